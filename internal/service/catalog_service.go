package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
)

type CatalogService struct {
	categoryRepo CategoryRepository
	pointRepo    CollectionPointRepository
}

func NewCatalogService(u uow.UOW) (*CatalogService, error) {
	categoryRepo, err := uow.GetRepositoryAs[CategoryRepository](u, uow.RepositoryName(repoargs.CategoryRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	pointRepo, err := uow.GetRepositoryAs[CollectionPointRepository](u,
		uow.RepositoryName(repoargs.CollectionPointRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CatalogService{categoryRepo: categoryRepo, pointRepo: pointRepo}, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, args repoargs.CategoryCreate) (*domain.Category, error) {
	switch {
	case args.Name == "":
		return nil, domain.NewValidationError("name", "is required")
	case args.PayoutAmount < 0:
		return nil, domain.NewValidationError("payout_amount", "must not be negative")
	}
	category, err := s.categoryRepo.Create(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating category %s: %w", args.Name, err)
	}
	return category, nil
}

// CreateCollectionPoint регистрирует точку сбора. Повторный sim_module - domain.ErrDuplicateKey,
// несуществующий оператор - domain.ErrRecordNotFound.
func (s *CatalogService) CreateCollectionPoint(
	ctx context.Context,
	args repoargs.CollectionPointCreate,
) (*domain.CollectionPoint, error) {
	switch {
	case args.Name == "":
		return nil, domain.NewValidationError("name", "is required")
	case args.SimModule == "":
		return nil, domain.NewValidationError("sim_module", "is required")
	case args.CommissionPercent < 0 || args.CommissionPercent > 100:
		return nil, domain.NewValidationError("commission_percent", "must be between 0 and 100")
	case args.AdvanceCapacityRemaining < 0:
		return nil, domain.NewValidationError("advance_capacity", "must not be negative")
	}
	point, err := s.pointRepo.Create(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating collection point %s: %w", args.SimModule, err)
	}
	return point, nil
}
