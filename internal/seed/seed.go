// Package seed loads portfolio content from YAML and writes it through the
// services, replacing whatever the collections held.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/go-yaml/yaml"
	"github.com/sirupsen/logrus"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/services"
)

//go:embed seed.yaml
var defaultData []byte

type Data struct {
	PersonalInfo models.PersonalInfoSeed    `yaml:"personalInfo"`
	Experience   []models.ExperienceCreate  `yaml:"experience"`
	Projects     []models.ProjectCreate     `yaml:"projects"`
	Skills       []models.SkillCreate       `yaml:"skills"`
	Education    []models.EducationCreate   `yaml:"education"`
	Achievements []models.AchievementCreate `yaml:"achievements"`
}

// Summary is the document count of each collection after seeding.
type Summary struct {
	PersonalInfo int64
	Experience   int64
	Projects     int64
	Skills       int64
	Education    int64
	Achievements int64
}

// Default returns the bundled portfolio content.
func Default() (*Data, error) {
	return Parse(defaultData)
}

func Load(path string) (*Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Parse(b []byte) (*Data, error) {
	var d Data
	if err := yaml.NewDecoder(bytes.NewReader(b)).Decode(&d); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &d, nil
}

type resetter interface {
	Resource() services.Resource
	Reset(ctx context.Context) (int64, error)
}

// Run clears every collection, then inserts d. Each document goes through
// the same validation as an API create.
func Run(ctx context.Context, svc *services.Services, d *Data, log logrus.FieldLogger) (Summary, error) {
	log.Info("clearing existing data")
	for _, r := range []resetter{svc.Experience, svc.Projects, svc.Skills, svc.Education, svc.Achievements} {
		n, err := r.Reset(ctx)
		if err != nil {
			return Summary{}, err
		}
		log.WithFields(logrus.Fields{"resource": r.Resource().Name, "deleted": n}).Debug("collection cleared")
	}

	log.Info("seeding personal information")
	if _, err := svc.PersonalInfo.Seed(ctx, d.PersonalInfo); err != nil {
		return Summary{}, err
	}

	if err := createAll(ctx, svc.Experience, d.Experience, log); err != nil {
		return Summary{}, err
	}
	if err := createAll[models.Project, models.ProjectCreate, models.ProjectUpdate](ctx, svc.Projects, d.Projects, log); err != nil {
		return Summary{}, err
	}
	if err := createAll(ctx, svc.Skills, d.Skills, log); err != nil {
		return Summary{}, err
	}
	if err := createAll(ctx, svc.Education, d.Education, log); err != nil {
		return Summary{}, err
	}
	if err := createAll(ctx, svc.Achievements, d.Achievements, log); err != nil {
		return Summary{}, err
	}

	s, err := count(ctx, svc)
	if err != nil {
		return Summary{}, err
	}
	log.WithFields(logrus.Fields{
		"personal_info": s.PersonalInfo,
		"experience":    s.Experience,
		"projects":      s.Projects,
		"skills":        s.Skills,
		"education":     s.Education,
		"achievements":  s.Achievements,
	}).Info("seeding completed")
	return s, nil
}

func createAll[T models.Entity, C models.Draft[T], U models.Patch](ctx context.Context, svc services.CollectionService[T, C, U], drafts []C, log logrus.FieldLogger) error {
	name := svc.Resource().Name
	log.WithFields(logrus.Fields{"resource": name, "count": len(drafts)}).Info("seeding collection")

	for i, in := range drafts {
		if _, err := svc.Create(ctx, in); err != nil {
			return fmt.Errorf("seed %s #%d: %w", name, i+1, err)
		}
	}
	return nil
}

func count(ctx context.Context, svc *services.Services) (Summary, error) {
	var (
		s   Summary
		err error
	)
	counters := []struct {
		dst *int64
		fn  func(context.Context) (int64, error)
	}{
		{&s.PersonalInfo, svc.PersonalInfo.Count},
		{&s.Experience, svc.Experience.Count},
		{&s.Projects, svc.Projects.Count},
		{&s.Skills, svc.Skills.Count},
		{&s.Education, svc.Education.Count},
		{&s.Achievements, svc.Achievements.Count},
	}
	for _, c := range counters {
		if *c.dst, err = c.fn(ctx); err != nil {
			return Summary{}, err
		}
	}
	return s, nil
}
