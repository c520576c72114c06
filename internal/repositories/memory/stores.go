package memory

import (
	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/repositories"
)

// NewStores returns an empty in-memory store for every collection.
func NewStores(opts ...repositories.Option) repositories.Stores {
	return repositories.Stores{
		PersonalInfo: NewCollectionRepo[models.PersonalInfo](opts...),
		Experience:   NewCollectionRepo[models.Experience](opts...),
		Projects:     NewCollectionRepo[models.Project](opts...),
		Skills:       NewCollectionRepo[models.Skill](opts...),
		Education:    NewCollectionRepo[models.Education](opts...),
		Achievements: NewCollectionRepo[models.Achievement](opts...),
	}
}
