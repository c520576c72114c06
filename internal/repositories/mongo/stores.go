package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/repositories"
)

func NewStores(db *mongo.Database, opts ...repositories.Option) repositories.Stores {
	return repositories.Stores{
		PersonalInfo: NewCollectionRepo[models.PersonalInfo](db, models.CollectionPersonalInfo, opts...),
		Experience:   NewCollectionRepo[models.Experience](db, models.CollectionExperience, opts...),
		Projects:     NewCollectionRepo[models.Project](db, models.CollectionProjects, opts...),
		Skills:       NewCollectionRepo[models.Skill](db, models.CollectionSkills, opts...),
		Education:    NewCollectionRepo[models.Education](db, models.CollectionEducation, opts...),
		Achievements: NewCollectionRepo[models.Achievement](db, models.CollectionAchievements, opts...),
	}
}
