// Package storetest checks that a repositories.Stores implementation honours
// the store contract. Backends run it from their own tests.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/repositories"
	"github.com/sarveshramani/portfolio/internal/utils"
)

// Factory returns empty stores that stamp updates with the given options.
type Factory func(t *testing.T, opts ...repositories.Option) repositories.Stores

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

type fixture struct {
	stores repositories.Stores
	clock  *clock
	seq    int
}

func (f *fixture) meta() models.Document {
	f.seq++
	return models.NewDocument(fmt.Sprintf("doc-%03d", f.seq), f.clock.now())
}

func ptr[T any](v T) *T { return &v }

func (f *fixture) skill(t *testing.T, category, name string) models.Skill {
	t.Helper()
	s := models.SkillCreate{Category: ptr(category), Name: ptr(name), Level: ptr(80), Description: ptr("d")}.Build(f.meta())
	require.NoError(t, f.stores.Skills.Insert(context.Background(), &s))
	return s
}

func (f *fixture) project(t *testing.T, title string, featured bool) models.Project {
	t.Helper()
	p := models.ProjectCreate{
		Title:        ptr(title),
		Description:  ptr("d"),
		Technologies: []string{"Go"},
		Category:     ptr("Backend"),
		Status:       ptr("Completed"),
		Type:         ptr("Personal"),
		IsFeatured:   ptr(featured),
	}.Build(f.meta())
	require.NoError(t, f.stores.Projects.Insert(context.Background(), &p))
	return p
}

func newFixture(t *testing.T, factory Factory) *fixture {
	c := &clock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	return &fixture{stores: factory(t, repositories.WithClock(c.now)), clock: c}
}

// Run exercises every store operation against stores built by factory.
func Run(t *testing.T, factory Factory) {
	ctx := context.Background()

	t.Run("insert then get by id", func(t *testing.T) {
		f := newFixture(t, factory)
		s := f.skill(t, "Languages", "Go")

		got, err := f.stores.Skills.GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.ID, got.ID)
		assert.Equal(t, s.Name, got.Name)
		assert.Equal(t, s.Level, got.Level)
		assert.True(t, s.CreatedAt.Equal(got.CreatedAt))
		assert.True(t, s.UpdatedAt.Equal(got.UpdatedAt))
	})

	t.Run("get unknown id", func(t *testing.T) {
		f := newFixture(t, factory)
		_, err := f.stores.Skills.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})

	t.Run("list sorts with id tiebreak", func(t *testing.T) {
		f := newFixture(t, factory)
		f.skill(t, "Tools", "Docker")
		f.skill(t, "Languages", "Java")
		f.skill(t, "Databases", "MongoDB")
		f.skill(t, "Languages", "Go")

		list, err := f.stores.Skills.List(ctx, repositories.SortBy("category", repositories.Ascending))
		require.NoError(t, err)
		require.Len(t, list, 4)

		got := make([]string, 0, len(list))
		for _, s := range list {
			got = append(got, s.Name)
		}
		assert.Equal(t, []string{"MongoDB", "Java", "Go", "Docker"}, got)

		again, err := f.stores.Skills.List(ctx, repositories.SortBy("category", repositories.Ascending))
		require.NoError(t, err)
		assert.Equal(t, list, again)
	})

	t.Run("list sorts strings in byte order", func(t *testing.T) {
		f := newFixture(t, factory)
		f.skill(t, "cloud", "Kubernetes")
		f.skill(t, "Databases", "MongoDB")
		f.skill(t, "apis", "gRPC")

		list, err := f.stores.Skills.List(ctx, repositories.SortBy("category", repositories.Ascending))
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "Databases", list[0].Category)
		assert.Equal(t, "apis", list[1].Category)
		assert.Equal(t, "cloud", list[2].Category)
	})

	t.Run("list newest first", func(t *testing.T) {
		f := newFixture(t, factory)
		f.skill(t, "A", "first")
		f.skill(t, "A", "second")

		list, err := f.stores.Skills.List(ctx, repositories.SortBy(models.FieldCreatedAt, repositories.Descending))
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "second", list[0].Name)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		f := newFixture(t, factory)
		list, err := f.stores.Skills.List(ctx, repositories.SortBy("category", repositories.Ascending))
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("list where filters on a flag", func(t *testing.T) {
		f := newFixture(t, factory)
		f.project(t, "plain", false)
		star := f.project(t, "star", true)

		list, err := f.stores.Projects.ListWhere(ctx,
			repositories.Filter{models.FieldIsFeatured: true},
			repositories.SortBy(models.FieldCreatedAt, repositories.Descending))
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, star.ID, list[0].ID)
	})

	t.Run("update by id patches only given fields", func(t *testing.T) {
		f := newFixture(t, factory)
		s := f.skill(t, "Languages", "Go")

		updated, err := f.stores.Skills.UpdateByID(ctx, s.ID, map[string]any{
			"level": 95,
			"id":    "hijack",
		})
		require.NoError(t, err)
		assert.Equal(t, s.ID, updated.ID)
		assert.Equal(t, 95, updated.Level)
		assert.Equal(t, s.Name, updated.Name)
		assert.True(t, s.CreatedAt.Equal(updated.CreatedAt))
		assert.True(t, updated.UpdatedAt.After(s.UpdatedAt))

		got, err := f.stores.Skills.GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, 95, got.Level)

		_, err = f.stores.Skills.GetByID(ctx, "hijack")
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})

	t.Run("update unknown id", func(t *testing.T) {
		f := newFixture(t, factory)
		_, err := f.stores.Skills.UpdateByID(ctx, "missing", map[string]any{"level": 1})
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})

	t.Run("delete by id", func(t *testing.T) {
		f := newFixture(t, factory)
		s := f.skill(t, "Languages", "Go")
		f.skill(t, "Languages", "Java")

		require.NoError(t, f.stores.Skills.DeleteByID(ctx, s.ID))
		assert.ErrorIs(t, f.stores.Skills.DeleteByID(ctx, s.ID), utils.ErrNotFound)

		n, err := f.stores.Skills.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("delete all", func(t *testing.T) {
		f := newFixture(t, factory)
		f.skill(t, "A", "a")
		f.skill(t, "B", "b")

		n, err := f.stores.Skills.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		count, err := f.stores.Skills.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("get one returns the oldest document", func(t *testing.T) {
		f := newFixture(t, factory)

		_, err := f.stores.PersonalInfo.GetOne(ctx)
		assert.ErrorIs(t, err, utils.ErrNotFound)

		first := models.PersonalInfoSeed{Name: ptr("first")}.Build(f.meta())
		second := models.PersonalInfoSeed{Name: ptr("second")}.Build(f.meta())
		require.NoError(t, f.stores.PersonalInfo.Insert(ctx, &second))
		require.NoError(t, f.stores.PersonalInfo.Insert(ctx, &first))

		got, err := f.stores.PersonalInfo.GetOne(ctx)
		require.NoError(t, err)
		assert.Equal(t, "first", got.Name)
	})
}
