package models

type Experience struct {
	Document `bson:",inline"`

	Company      string   `bson:"company" json:"company"`
	Role         string   `bson:"role" json:"role"`
	Period       string   `bson:"period" json:"period"`
	Location     string   `bson:"location" json:"location"`
	Type         string   `bson:"type" json:"type"`
	Description  string   `bson:"description" json:"description"`
	Achievements []string `bson:"achievements" json:"achievements"`
	Technologies []string `bson:"technologies" json:"technologies"`
	IsCurrentJob bool     `bson:"isCurrentJob" json:"isCurrentJob"`
}

type ExperienceCreate struct {
	Company      *string  `json:"company" yaml:"company" binding:"required"`
	Role         *string  `json:"role" yaml:"role" binding:"required"`
	Period       *string  `json:"period" yaml:"period" binding:"required"`
	Location     *string  `json:"location" yaml:"location" binding:"required"`
	Type         *string  `json:"type" yaml:"type" binding:"required"`
	Description  *string  `json:"description" yaml:"description" binding:"required"`
	Achievements []string `json:"achievements" yaml:"achievements" binding:"required"`
	Technologies []string `json:"technologies" yaml:"technologies" binding:"required"`
	IsCurrentJob *bool    `json:"isCurrentJob" yaml:"isCurrentJob"` // defaults to true
}

func (c ExperienceCreate) Build(meta Document) Experience {
	return Experience{
		Document:     meta,
		Company:      str(c.Company),
		Role:         str(c.Role),
		Period:       str(c.Period),
		Location:     str(c.Location),
		Type:         str(c.Type),
		Description:  str(c.Description),
		Achievements: orEmpty(c.Achievements),
		Technologies: orEmpty(c.Technologies),
		IsCurrentJob: boolOr(c.IsCurrentJob, true),
	}
}

type ExperienceUpdate struct {
	Company      *string  `json:"company"`
	Role         *string  `json:"role"`
	Period       *string  `json:"period"`
	Location     *string  `json:"location"`
	Type         *string  `json:"type"`
	Description  *string  `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
	IsCurrentJob *bool    `json:"isCurrentJob"`
}

func (u ExperienceUpdate) Fields() map[string]any {
	f := map[string]any{}
	putString(f, "company", u.Company)
	putString(f, "role", u.Role)
	putString(f, "period", u.Period)
	putString(f, "location", u.Location)
	putString(f, "type", u.Type)
	putString(f, "description", u.Description)
	putStrings(f, "achievements", u.Achievements)
	putStrings(f, "technologies", u.Technologies)
	putBool(f, "isCurrentJob", u.IsCurrentJob)
	return f
}
