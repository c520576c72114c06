package models

type Project struct {
	Document `bson:",inline"`

	Title        string   `bson:"title" json:"title"`
	Description  string   `bson:"description" json:"description"`
	Technologies []string `bson:"technologies" json:"technologies"`
	Category     string   `bson:"category" json:"category"`
	Highlights   []string `bson:"highlights" json:"highlights"`
	Status       string   `bson:"status" json:"status"` // Completed, In Progress, Planned...
	Type         string   `bson:"type" json:"type"`     // Enterprise, Personal, Research...
	IsFeatured   bool     `bson:"isFeatured" json:"isFeatured"`
	GithubURL    *string  `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	DemoURL      *string  `bson:"demoUrl,omitempty" json:"demoUrl,omitempty"`
}

type ProjectCreate struct {
	Title        *string  `json:"title" yaml:"title" binding:"required"`
	Description  *string  `json:"description" yaml:"description" binding:"required"`
	Technologies []string `json:"technologies" yaml:"technologies" binding:"required"`
	Category     *string  `json:"category" yaml:"category" binding:"required"`
	Highlights   []string `json:"highlights" yaml:"highlights"`
	Status       *string  `json:"status" yaml:"status" binding:"required"`
	Type         *string  `json:"type" yaml:"type" binding:"required"`
	IsFeatured   *bool    `json:"isFeatured" yaml:"isFeatured"`
	GithubURL    *string  `json:"githubUrl" yaml:"githubUrl"`
	DemoURL      *string  `json:"demoUrl" yaml:"demoUrl"`
}

func (c ProjectCreate) Build(meta Document) Project {
	return Project{
		Document:     meta,
		Title:        str(c.Title),
		Description:  str(c.Description),
		Technologies: orEmpty(c.Technologies),
		Category:     str(c.Category),
		Highlights:   orEmpty(c.Highlights),
		Status:       str(c.Status),
		Type:         str(c.Type),
		IsFeatured:   boolOr(c.IsFeatured, false),
		GithubURL:    c.GithubURL,
		DemoURL:      c.DemoURL,
	}
}

type ProjectUpdate struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Technologies []string `json:"technologies"`
	Category     *string  `json:"category"`
	Highlights   []string `json:"highlights"`
	Status       *string  `json:"status"`
	Type         *string  `json:"type"`
	IsFeatured   *bool    `json:"isFeatured"`
	GithubURL    *string  `json:"githubUrl"`
	DemoURL      *string  `json:"demoUrl"`
}

func (u ProjectUpdate) Fields() map[string]any {
	f := map[string]any{}
	putString(f, "title", u.Title)
	putString(f, "description", u.Description)
	putStrings(f, "technologies", u.Technologies)
	putString(f, "category", u.Category)
	putStrings(f, "highlights", u.Highlights)
	putString(f, "status", u.Status)
	putString(f, "type", u.Type)
	putBool(f, FieldIsFeatured, u.IsFeatured)
	putString(f, "githubUrl", u.GithubURL)
	putString(f, "demoUrl", u.DemoURL)
	return f
}

const FieldIsFeatured = "isFeatured"
