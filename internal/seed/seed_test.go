package seed

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarveshramani/portfolio/internal/logger"
	"github.com/sarveshramani/portfolio/internal/repositories/memory"
	"github.com/sarveshramani/portfolio/internal/services"
	"github.com/sarveshramani/portfolio/internal/utils"
)

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	require.NotNil(t, d.PersonalInfo.Name)
	assert.Equal(t, "Sarvesh Ramani", *d.PersonalInfo.Name)
	assert.Equal(t, "+91 8939072479", *d.PersonalInfo.Phone)
	assert.Len(t, d.Experience, 1)
	assert.Len(t, d.Projects, 5)
	assert.Len(t, d.Skills, 15)
	assert.Len(t, d.Education, 1)
	assert.Len(t, d.Achievements, 2)

	assert.Equal(t, "2023-24", *d.Achievements[1].Year)
	require.NotNil(t, d.Skills[0].Level)
	assert.Equal(t, 90, *d.Skills[0].Level)
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	svc := services.New(memory.NewStores())
	log := logger.NewWithOutput("error", io.Discard)

	d, err := Default()
	require.NoError(t, err)

	s, err := Run(ctx, svc, d, log)
	require.NoError(t, err)
	assert.Equal(t, Summary{PersonalInfo: 1, Experience: 1, Projects: 5, Skills: 15, Education: 1, Achievements: 2}, s)

	featured, err := svc.Projects.ListFeatured(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, 2)

	p, err := svc.PersonalInfo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", p.Title)

	// seeding again replaces instead of appending
	s, err = Run(ctx, svc, d, log)
	require.NoError(t, err)
	assert.Equal(t, int64(5), s.Projects)
	assert.Equal(t, int64(1), s.PersonalInfo)
}

func TestRun_InvalidEntry(t *testing.T) {
	ctx := context.Background()
	svc := services.New(memory.NewStores())

	d, err := Parse([]byte(`
personalInfo: {name: a, title: b, email: c, phone: d, linkedin: e, location: f, profileImage: g, summary: h, tagline: i}
skills:
  - {category: Languages, name: Go, level: 150, description: too high}
`))
	require.NoError(t, err)

	_, err = Run(ctx, svc, d, logger.NewWithOutput("error", io.Discard))
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeValidation))
	assert.Contains(t, err.Error(), "Skill #1")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("achievements:\n  - {title: t, description: d, year: \"2024\"}\n"), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	require.Len(t, d.Achievements, 1)
	assert.Nil(t, d.Achievements[0].Category)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("skills: [unterminated"))
	assert.Error(t, err)
}
