package services

import (
	"context"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/repositories"
	"github.com/sarveshramani/portfolio/internal/utils"
)

type ProjectService interface {
	CollectionService[models.Project, models.ProjectCreate, models.ProjectUpdate]
	ListFeatured(ctx context.Context) ([]models.Project, error)
}

type projectService struct {
	*collectionService[models.Project, models.ProjectCreate, models.ProjectUpdate]
}

func NewProjectService(store repositories.Store[models.Project], opts ...Option) ProjectService {
	return &projectService{
		collectionService: newCollectionService[models.Project, models.ProjectCreate, models.ProjectUpdate](store, ProjectResource, opts...),
	}
}

// ListFeatured returns projects flagged isFeatured, newest first.
func (s *projectService) ListFeatured(ctx context.Context) ([]models.Project, error) {
	const op = "ProjectService.ListFeatured"

	out, err := s.store.ListWhere(ctx, repositories.Filter{models.FieldIsFeatured: true}, s.res.Sort)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list featured projects", err)
	}
	return out, nil
}
