package models

import "time"

// Collection names, one per resource type.
const (
	CollectionPersonalInfo = "personal_info"
	CollectionExperience   = "experience"
	CollectionProjects     = "projects"
	CollectionSkills       = "skills"
	CollectionEducation    = "education"
	CollectionAchievements = "achievements"
)

// Stored field names shared by every resource.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Document carries the identity and timestamps of a stored resource.
// The storage engine's own key (Mongo _id) is never part of it.
type Document struct {
	ID        string    `bson:"id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func NewDocument(id string, now time.Time) Document {
	return Document{ID: id, CreatedAt: now, UpdatedAt: now}
}

func (d Document) Meta() Document { return d }

// Entity is implemented by every resource through its embedded Document.
type Entity interface {
	Meta() Document
}

// Draft is the create variant of a resource: every required field present.
type Draft[T Entity] interface {
	Build(meta Document) T
}

// Patch is the update variant of a resource. Fields returns only the
// supplied fields, keyed by stored name; absent or null fields are left out.
type Patch interface {
	Fields() map[string]any
}

func putString(f map[string]any, key string, v *string) {
	if v != nil {
		f[key] = *v
	}
}

func putStrings(f map[string]any, key string, v []string) {
	if v != nil {
		f[key] = v
	}
}

func putBool(f map[string]any, key string, v *bool) {
	if v != nil {
		f[key] = *v
	}
}

func putInt(f map[string]any, key string, v *int) {
	if v != nil {
		f[key] = *v
	}
}

func str(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
