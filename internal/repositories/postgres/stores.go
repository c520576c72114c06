package postgres

import (
	"gorm.io/gorm"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/repositories"
)

var tables = []string{
	models.CollectionPersonalInfo,
	models.CollectionExperience,
	models.CollectionProjects,
	models.CollectionSkills,
	models.CollectionEducation,
	models.CollectionAchievements,
}

// MigrateAll creates one document table per collection.
func MigrateAll(db *gorm.DB) error {
	for _, t := range tables {
		if err := Migrate(db, t); err != nil {
			return err
		}
	}
	return nil
}

func NewStores(db *gorm.DB, opts ...repositories.Option) repositories.Stores {
	return repositories.Stores{
		PersonalInfo: NewDocumentRepo[models.PersonalInfo](db, models.CollectionPersonalInfo, opts...),
		Experience:   NewDocumentRepo[models.Experience](db, models.CollectionExperience, opts...),
		Projects:     NewDocumentRepo[models.Project](db, models.CollectionProjects, opts...),
		Skills:       NewDocumentRepo[models.Skill](db, models.CollectionSkills, opts...),
		Education:    NewDocumentRepo[models.Education](db, models.CollectionEducation, opts...),
		Achievements: NewDocumentRepo[models.Achievement](db, models.CollectionAchievements, opts...),
	}
}
