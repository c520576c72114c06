package handlers

import (
	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/services"
)

type (
	ExperienceHandler  = CollectionHandler[models.Experience, models.ExperienceCreate, models.ExperienceUpdate]
	SkillHandler       = CollectionHandler[models.Skill, models.SkillCreate, models.SkillUpdate]
	EducationHandler   = CollectionHandler[models.Education, models.EducationCreate, models.EducationUpdate]
	AchievementHandler = CollectionHandler[models.Achievement, models.AchievementCreate, models.AchievementUpdate]
)

// Set holds one handler per resource.
type Set struct {
	PersonalInfo *PersonalInfoHandler
	Experience   *ExperienceHandler
	Projects     *ProjectHandler
	Skills       *SkillHandler
	Education    *EducationHandler
	Achievements *AchievementHandler
}

func NewSet(svc *services.Services) *Set {
	return &Set{
		PersonalInfo: NewPersonalInfoHandler(svc.PersonalInfo),
		Experience:   NewCollectionHandler(svc.Experience),
		Projects:     NewProjectHandler(svc.Projects),
		Skills:       NewCollectionHandler(svc.Skills),
		Education:    NewCollectionHandler(svc.Education),
		Achievements: NewCollectionHandler(svc.Achievements),
	}
}
