package models

const DefaultAchievementCategory = "Award"

type Achievement struct {
	Document `bson:",inline"`

	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Year        string `bson:"year" json:"year"`
	Category    string `bson:"category" json:"category"` // Award, Recognition...
}

type AchievementCreate struct {
	Title       *string `json:"title" yaml:"title" binding:"required"`
	Description *string `json:"description" yaml:"description" binding:"required"`
	Year        *string `json:"year" yaml:"year" binding:"required"`
	Category    *string `json:"category" yaml:"category"`
}

func (c AchievementCreate) Build(meta Document) Achievement {
	a := Achievement{
		Document:    meta,
		Title:       str(c.Title),
		Description: str(c.Description),
		Year:        str(c.Year),
		Category:    DefaultAchievementCategory,
	}
	if c.Category != nil {
		a.Category = *c.Category
	}
	return a
}

type AchievementUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Year        *string `json:"year"`
	Category    *string `json:"category"`
}

func (u AchievementUpdate) Fields() map[string]any {
	f := map[string]any{}
	putString(f, "title", u.Title)
	putString(f, "description", u.Description)
	putString(f, "year", u.Year)
	putString(f, "category", u.Category)
	return f
}
