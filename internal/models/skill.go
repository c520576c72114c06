package models

type Skill struct {
	Document `bson:",inline"`

	Category    string `bson:"category" json:"category"`
	Name        string `bson:"name" json:"name"`
	Level       int    `bson:"level" json:"level"` // 0..100
	Description string `bson:"description" json:"description"`
}

type SkillCreate struct {
	Category    *string `json:"category" yaml:"category" binding:"required"`
	Name        *string `json:"name" yaml:"name" binding:"required"`
	Level       *int    `json:"level" yaml:"level" binding:"required,min=0,max=100"`
	Description *string `json:"description" yaml:"description" binding:"required"`
}

func (c SkillCreate) Build(meta Document) Skill {
	s := Skill{
		Document:    meta,
		Category:    str(c.Category),
		Name:        str(c.Name),
		Description: str(c.Description),
	}
	if c.Level != nil {
		s.Level = *c.Level
	}
	return s
}

type SkillUpdate struct {
	Category    *string `json:"category"`
	Name        *string `json:"name"`
	Level       *int    `json:"level" binding:"omitempty,min=0,max=100"`
	Description *string `json:"description"`
}

func (u SkillUpdate) Fields() map[string]any {
	f := map[string]any{}
	putString(f, "category", u.Category)
	putString(f, "name", u.Name)
	putInt(f, "level", u.Level)
	putString(f, "description", u.Description)
	return f
}
