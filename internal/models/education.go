package models

type Education struct {
	Document `bson:",inline"`

	Degree      string `bson:"degree" json:"degree"`
	Institution string `bson:"institution" json:"institution"`
	Period      string `bson:"period" json:"period"`
	Location    string `bson:"location" json:"location"`
	Description string `bson:"description" json:"description"`
}

type EducationCreate struct {
	Degree      *string `json:"degree" yaml:"degree" binding:"required"`
	Institution *string `json:"institution" yaml:"institution" binding:"required"`
	Period      *string `json:"period" yaml:"period" binding:"required"`
	Location    *string `json:"location" yaml:"location" binding:"required"`
	Description *string `json:"description" yaml:"description" binding:"required"`
}

func (c EducationCreate) Build(meta Document) Education {
	return Education{
		Document:    meta,
		Degree:      str(c.Degree),
		Institution: str(c.Institution),
		Period:      str(c.Period),
		Location:    str(c.Location),
		Description: str(c.Description),
	}
}

// EducationUpdate has no route today; it keeps the create/update pair
// complete for every resource.
type EducationUpdate struct {
	Degree      *string `json:"degree"`
	Institution *string `json:"institution"`
	Period      *string `json:"period"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

func (u EducationUpdate) Fields() map[string]any {
	f := map[string]any{}
	putString(f, "degree", u.Degree)
	putString(f, "institution", u.Institution)
	putString(f, "period", u.Period)
	putString(f, "location", u.Location)
	putString(f, "description", u.Description)
	return f
}
