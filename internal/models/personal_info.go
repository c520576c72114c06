package models

// PersonalInfo is the singleton profile document. It has no create variant:
// the document is seeded out of band and only ever patched.
type PersonalInfo struct {
	Document `bson:",inline"`

	Name         string `bson:"name" json:"name"`
	Title        string `bson:"title" json:"title"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone" json:"phone"`
	LinkedIn     string `bson:"linkedin" json:"linkedin"`
	Location     string `bson:"location" json:"location"`
	ProfileImage string `bson:"profileImage" json:"profileImage"`
	Summary      string `bson:"summary" json:"summary"`
	Tagline      string `bson:"tagline" json:"tagline"`
}

// PersonalInfoSeed is the full shape used when seeding the singleton.
type PersonalInfoSeed struct {
	Name         *string `json:"name" yaml:"name" binding:"required"`
	Title        *string `json:"title" yaml:"title" binding:"required"`
	Email        *string `json:"email" yaml:"email" binding:"required"`
	Phone        *string `json:"phone" yaml:"phone" binding:"required"`
	LinkedIn     *string `json:"linkedin" yaml:"linkedin" binding:"required"`
	Location     *string `json:"location" yaml:"location" binding:"required"`
	ProfileImage *string `json:"profileImage" yaml:"profileImage" binding:"required"`
	Summary      *string `json:"summary" yaml:"summary" binding:"required"`
	Tagline      *string `json:"tagline" yaml:"tagline" binding:"required"`
}

func (s PersonalInfoSeed) Build(meta Document) PersonalInfo {
	return PersonalInfo{
		Document:     meta,
		Name:         str(s.Name),
		Title:        str(s.Title),
		Email:        str(s.Email),
		Phone:        str(s.Phone),
		LinkedIn:     str(s.LinkedIn),
		Location:     str(s.Location),
		ProfileImage: str(s.ProfileImage),
		Summary:      str(s.Summary),
		Tagline:      str(s.Tagline),
	}
}

type PersonalInfoUpdate struct {
	Name         *string `json:"name"`
	Title        *string `json:"title"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	LinkedIn     *string `json:"linkedin"`
	Location     *string `json:"location"`
	ProfileImage *string `json:"profileImage"`
	Summary      *string `json:"summary"`
	Tagline      *string `json:"tagline"`
}

func (u PersonalInfoUpdate) Fields() map[string]any {
	f := map[string]any{}
	putString(f, "name", u.Name)
	putString(f, "title", u.Title)
	putString(f, "email", u.Email)
	putString(f, "phone", u.Phone)
	putString(f, "linkedin", u.LinkedIn)
	putString(f, "location", u.Location)
	putString(f, "profileImage", u.ProfileImage)
	putString(f, "summary", u.Summary)
	putString(f, "tagline", u.Tagline)
	return f
}
