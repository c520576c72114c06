package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/repositories"
	"github.com/sarveshramani/portfolio/internal/repositories/storetest"
)

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T, opts ...repositories.Option) repositories.Stores {
		return NewStores(opts...)
	})
}

func TestInsert_DuplicateID(t *testing.T) {
	r := NewCollectionRepo[models.Skill]()
	ctx := context.Background()

	s := models.Skill{Document: models.Document{ID: "dup"}, Name: "Go"}
	require.NoError(t, r.Insert(ctx, &s))
	assert.Error(t, r.Insert(ctx, &s))
}

func TestReturnedDocumentsAreCopies(t *testing.T) {
	r := NewCollectionRepo[models.Skill]()
	ctx := context.Background()

	s := models.Skill{Document: models.Document{ID: "a"}, Name: "Go"}
	require.NoError(t, r.Insert(ctx, &s))
	s.Name = "mutated"

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Go", got.Name)
	got.Name = "mutated again"

	again, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Go", again.Name)
}
