package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/repositories"
)

type env struct {
	now   func() time.Time
	newID func() string
}

type Option func(*env)

func WithClock(now func() time.Time) Option {
	return func(e *env) { e.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(e *env) { e.newID = newID }
}

func newEnv(opts []Option) env {
	e := env{now: repositories.SystemClock, newID: uuid.NewString}
	for _, fn := range opts {
		fn(&e)
	}
	return e
}

type (
	ExperienceService  = CollectionService[models.Experience, models.ExperienceCreate, models.ExperienceUpdate]
	SkillService       = CollectionService[models.Skill, models.SkillCreate, models.SkillUpdate]
	EducationService   = CollectionService[models.Education, models.EducationCreate, models.EducationUpdate]
	AchievementService = CollectionService[models.Achievement, models.AchievementCreate, models.AchievementUpdate]
)

var (
	ExperienceResource  = Resource{Name: "Experience", Sort: repositories.SortBy(models.FieldCreatedAt, repositories.Descending)}
	ProjectResource     = Resource{Name: "Project", Sort: repositories.SortBy(models.FieldCreatedAt, repositories.Descending)}
	SkillResource       = Resource{Name: "Skill", Sort: repositories.SortBy("category", repositories.Ascending)}
	EducationResource   = Resource{Name: "Education", Sort: repositories.SortBy(models.FieldCreatedAt, repositories.Descending)}
	AchievementResource = Resource{Name: "Achievement", Sort: repositories.SortBy("year", repositories.Descending)}
)

// Services is the full set of content services, one per collection.
type Services struct {
	PersonalInfo PersonalInfoService
	Experience   ExperienceService
	Projects     ProjectService
	Skills       SkillService
	Education    EducationService
	Achievements AchievementService
}

func New(stores repositories.Stores, opts ...Option) *Services {
	return &Services{
		PersonalInfo: NewPersonalInfoService(stores.PersonalInfo, opts...),
		Experience:   NewCollectionService[models.Experience, models.ExperienceCreate, models.ExperienceUpdate](stores.Experience, ExperienceResource, opts...),
		Projects:     NewProjectService(stores.Projects, opts...),
		Skills:       NewCollectionService[models.Skill, models.SkillCreate, models.SkillUpdate](stores.Skills, SkillResource, opts...),
		Education:    NewCollectionService[models.Education, models.EducationCreate, models.EducationUpdate](stores.Education, EducationResource, opts...),
		Achievements: NewCollectionService[models.Achievement, models.AchievementCreate, models.AchievementUpdate](stores.Achievements, AchievementResource, opts...),
	}
}
