package store

import (
	"context"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/oleksiiv/warehouse-golang/internal/models"
	"go.uber.org/zap"
)

// CreateCategoryInput carries the fields for a new category.
type CreateCategoryInput struct {
	Name string `json:"name"`
}

// UpdateCategoryInput is a partial patch; nil fields are left unchanged.
type UpdateCategoryInput struct {
	Name *string `json:"name"`
}

// CreateCategory validates and stores a new category.
func (s *Store) CreateCategory(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("category name is required")
	}

	now := nowUTC()
	cat := &models.Category{
		ID:        newID(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.rw(ctx, func(txn *badger.Txn) error {
		return putDoc(txn, colCategories, cat.ID, cat)
	}); err != nil {
		return nil, err
	}

	s.log.Info("category created", zap.String("id", cat.ID))
	return cat, nil
}

// GetCategory returns the category or NotFoundError.
func (s *Store) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	var cat *models.Category
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		cat, err = getDoc[models.Category](txn, colCategories, "category", id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// GetAllCategories returns every category.
func (s *Store) GetAllCategories(ctx context.Context) ([]*models.Category, error) {
	var cats []*models.Category
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		cats, err = scanDocs[models.Category](txn, colCategories)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// UpdateCategory applies a partial patch to an existing category.
func (s *Store) UpdateCategory(ctx context.Context, id string, in UpdateCategoryInput) (*models.Category, error) {
	var cat *models.Category
	err := s.rw(ctx, func(txn *badger.Txn) error {
		var err error
		cat, err = getDoc[models.Category](txn, colCategories, "category", id)
		if err != nil {
			return err
		}
		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return validationf("category name cannot be empty")
			}
			cat.Name = *in.Name
		}
		cat.UpdatedAt = nowUTC()
		return putDoc(txn, colCategories, id, cat)
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// DeleteCategory removes the category and cascades to its products. Each
// product deletion in turn clears the cells that held it.
func (s *Store) DeleteCategory(ctx context.Context, id string) (*models.Category, error) {
	cat, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := s.ProductsByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if _, err := s.DeleteProduct(ctx, p.ID); err != nil && !IsNotFound(err) {
			return nil, err
		}
	}

	if err := s.rw(ctx, func(txn *badger.Txn) error {
		return txn.Delete(key(colCategories, id))
	}); err != nil {
		return nil, err
	}

	s.log.Info("category deleted", zap.String("id", id), zap.Int("products", len(products)))
	return cat, nil
}
