package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/repositories"
	"github.com/sarveshramani/portfolio/internal/utils"
)

// Resource names a collection for messages and fixes its listing order.
type Resource struct {
	Name string // "Experience", "Project"...
	Sort repositories.Sort
}

// CollectionService is the CRUD surface shared by every id-addressed resource.
type CollectionService[T models.Entity, C models.Draft[T], U models.Patch] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, in C) (*T, error)
	Update(ctx context.Context, id string, in U) (*T, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	Reset(ctx context.Context) (int64, error)
	Resource() Resource
}

type collectionService[T models.Entity, C models.Draft[T], U models.Patch] struct {
	store repositories.Store[T]
	res   Resource
	env   env
}

func NewCollectionService[T models.Entity, C models.Draft[T], U models.Patch](store repositories.Store[T], res Resource, opts ...Option) CollectionService[T, C, U] {
	return newCollectionService[T, C, U](store, res, opts...)
}

func newCollectionService[T models.Entity, C models.Draft[T], U models.Patch](store repositories.Store[T], res Resource, opts ...Option) *collectionService[T, C, U] {
	return &collectionService[T, C, U]{store: store, res: res, env: newEnv(opts)}
}

func (s *collectionService[T, C, U]) op(method string) string {
	return s.res.Name + "Service." + method
}

func (s *collectionService[T, C, U]) lower() string {
	return strings.ToLower(s.res.Name)
}

func (s *collectionService[T, C, U]) Resource() Resource { return s.res }

func (s *collectionService[T, C, U]) List(ctx context.Context) ([]T, error) {
	out, err := s.store.List(ctx, s.res.Sort)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, s.op("List"), "failed to list "+s.lower(), err)
	}
	return out, nil
}

func (s *collectionService[T, C, U]) Create(ctx context.Context, in C) (*T, error) {
	op := s.op("Create")

	if err := models.Check(in); err != nil {
		return nil, utils.Invalid(op, "invalid "+s.lower(), err, models.FieldErrors(err)...)
	}

	doc := in.Build(models.NewDocument(s.env.newID(), s.env.now()))
	if err := s.store.Insert(ctx, &doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create "+s.lower(), err)
	}
	return &doc, nil
}

func (s *collectionService[T, C, U]) Update(ctx context.Context, id string, in U) (*T, error) {
	op := s.op("Update")

	if err := models.Check(in); err != nil {
		return nil, utils.Invalid(op, "invalid "+s.lower(), err, models.FieldErrors(err)...)
	}

	out, err := s.store.UpdateByID(ctx, id, in.Fields())
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, s.res.Name+" not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update "+s.lower(), err)
	}
	return out, nil
}

func (s *collectionService[T, C, U]) Delete(ctx context.Context, id string) error {
	op := s.op("Delete")

	if err := s.store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, s.res.Name+" not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete "+s.lower(), err)
	}
	return nil
}

func (s *collectionService[T, C, U]) Count(ctx context.Context) (int64, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, s.op("Count"), "failed to count "+s.lower(), err)
	}
	return n, nil
}

// Reset removes every document of the collection.
func (s *collectionService[T, C, U]) Reset(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, s.op("Reset"), "failed to clear "+s.lower(), err)
	}
	return n, nil
}
