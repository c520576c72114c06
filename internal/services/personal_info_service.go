package services

import (
	"context"
	"errors"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/repositories"
	"github.com/sarveshramani/portfolio/internal/utils"
)

const personalInfoNotFound = "Personal information not found"

// PersonalInfoService manages the singleton profile document.
type PersonalInfoService interface {
	Get(ctx context.Context) (*models.PersonalInfo, error)
	Update(ctx context.Context, in models.PersonalInfoUpdate) (*models.PersonalInfo, error)
	// Seed replaces whatever profile exists with a fresh document.
	Seed(ctx context.Context, in models.PersonalInfoSeed) (*models.PersonalInfo, error)
	Count(ctx context.Context) (int64, error)
}

type personalInfoService struct {
	store repositories.Store[models.PersonalInfo]
	env   env
}

func NewPersonalInfoService(store repositories.Store[models.PersonalInfo], opts ...Option) PersonalInfoService {
	return &personalInfoService{store: store, env: newEnv(opts)}
}

func (s *personalInfoService) Get(ctx context.Context) (*models.PersonalInfo, error) {
	const op = "PersonalInfoService.Get"

	p, err := s.store.GetOne(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, personalInfoNotFound, err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get personal information", err)
	}
	return p, nil
}

func (s *personalInfoService) Update(ctx context.Context, in models.PersonalInfoUpdate) (*models.PersonalInfo, error) {
	const op = "PersonalInfoService.Update"

	existing, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	out, err := s.store.UpdateByID(ctx, existing.ID, in.Fields())
	if err != nil {
		// removed between the lookup and the write
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, personalInfoNotFound, err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update personal information", err)
	}
	return out, nil
}

func (s *personalInfoService) Seed(ctx context.Context, in models.PersonalInfoSeed) (*models.PersonalInfo, error) {
	const op = "PersonalInfoService.Seed"

	if err := models.Check(in); err != nil {
		return nil, utils.Invalid(op, "invalid personal information", err, models.FieldErrors(err)...)
	}
	if _, err := s.store.DeleteAll(ctx); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to clear personal information", err)
	}

	p := in.Build(models.NewDocument(s.env.newID(), s.env.now()))
	if err := s.store.Insert(ctx, &p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to store personal information", err)
	}
	return &p, nil
}

func (s *personalInfoService) Count(ctx context.Context) (int64, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, "PersonalInfoService.Count", "failed to count personal information", err)
	}
	return n, nil
}
