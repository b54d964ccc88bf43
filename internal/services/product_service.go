package services

import (
	"context"

	"github.com/oleksiiv/warehouse-golang/internal/models"
	"github.com/oleksiiv/warehouse-golang/internal/store"
	"go.uber.org/zap"
)

// ProductService serves product records populated with their category.
type ProductService struct {
	store *store.Store
	log   *zap.Logger
}

func (s *ProductService) GetAll(ctx context.Context) ([]*models.Product, error) {
	products, err := s.store.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if err := s.store.PopulateProduct(ctx, p); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	if err := s.store.PopulateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, in store.CreateProductInput) (*models.Product, error) {
	return s.store.CreateProduct(ctx, in)
}

func (s *ProductService) Update(ctx context.Context, id string, in store.UpdateProductInput) (*models.Product, error) {
	product, err := s.store.UpdateProduct(ctx, id, in)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	if err := s.store.PopulateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Remove(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.store.DeleteProduct(ctx, id)
	if gone, err := absent(err); gone || err != nil {
		return nil, err
	}
	return product, nil
}

// ListByCategory narrows products to one category, populated like GetAll.
func (s *ProductService) ListByCategory(ctx context.Context, categoryID string) ([]*models.Product, error) {
	products, err := s.store.ProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if err := s.store.PopulateProduct(ctx, p); err != nil {
			return nil, err
		}
	}
	return products, nil
}
