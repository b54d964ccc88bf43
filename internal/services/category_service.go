package services

import (
	"context"

	"github.com/oleksiiv/warehouse-golang/internal/models"
	"github.com/oleksiiv/warehouse-golang/internal/store"
	"go.uber.org/zap"
)

// CategoryService serves category records. Categories reference nothing;
// there is nothing to populate.
type CategoryService struct {
	store *store.Store
	log   *zap.Logger
}

func (s *CategoryService) GetAll(ctx context.Context) ([]*models.Category, error) {
	return s.store.GetAllCategories(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*models.Category, error) {
	cat, err := s.store.GetCategory(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Create(ctx context.Context, in store.CreateCategoryInput) (*models.Category, error) {
	return s.store.CreateCategory(ctx, in)
}

func (s *CategoryService) Update(ctx context.Context, id string, in store.UpdateCategoryInput) (*models.Category, error) {
	cat, err := s.store.UpdateCategory(ctx, id, in)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Remove(ctx context.Context, id string) (*models.Category, error) {
	cat, err := s.store.DeleteCategory(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	return cat, nil
}
