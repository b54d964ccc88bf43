package store

import (
	"context"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/oleksiiv/warehouse-golang/internal/models"
	"go.uber.org/zap"
)

// CreateProductInput carries the fields for a new product. Quantity
// defaults to 1 when omitted.
type CreateProductInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Barcode     string `json:"barcode"`
	RFID        string `json:"rfid"`
	Quantity    *int   `json:"quantity"`
	Description string `json:"description"`
}

// UpdateProductInput is a partial patch; nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Barcode     *string `json:"barcode"`
	RFID        *string `json:"rfid"`
	Quantity    *int    `json:"quantity"`
	Description *string `json:"description"`
}

// CreateProduct validates and stores a new product. The category reference
// must resolve to an existing category.
func (s *Store) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("product name is required")
	}
	if in.Category == "" {
		return nil, validationf("product category is required")
	}
	if strings.TrimSpace(in.Barcode) == "" {
		return nil, validationf("product barcode is required")
	}
	if strings.TrimSpace(in.RFID) == "" {
		return nil, validationf("product rfid is required")
	}

	quantity := 1
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, validationf("product quantity cannot be negative")
		}
		quantity = *in.Quantity
	}

	now := nowUTC()
	product := &models.Product{
		ID:          newID(),
		Name:        in.Name,
		Category:    models.NewRef[models.Category](in.Category),
		Barcode:     in.Barcode,
		RFID:        in.RFID,
		Quantity:    quantity,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.rw(ctx, func(txn *badger.Txn) error {
		ok, err := exists(txn, colCategories, in.Category)
		if err != nil {
			return err
		}
		if !ok {
			return validationf("category %s does not exist", in.Category)
		}
		return putDoc(txn, colProducts, product.ID, product)
	}); err != nil {
		return nil, err
	}

	s.log.Info("product created", zap.String("id", product.ID))
	return product, nil
}

// GetProduct returns the product or NotFoundError.
func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product *models.Product
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		product, err = getDoc[models.Product](txn, colProducts, "product", id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetAllProducts returns every product.
func (s *Store) GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		products, err = scanDocs[models.Product](txn, colProducts)
		return err
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProduct applies a partial patch. Setting the category to an id that
// does not resolve is rejected with IntegrityError, matching the guarantee
// create gives.
func (s *Store) UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*models.Product, error) {
	var product *models.Product
	err := s.rw(ctx, func(txn *badger.Txn) error {
		var err error
		product, err = getDoc[models.Product](txn, colProducts, "product", id)
		if err != nil {
			return err
		}
		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return validationf("product name cannot be empty")
			}
			product.Name = *in.Name
		}
		if in.Category != nil {
			ok, err := exists(txn, colCategories, *in.Category)
			if err != nil {
				return err
			}
			if !ok {
				return integrityf("category %s does not exist", *in.Category)
			}
			product.Category = models.NewRef[models.Category](*in.Category)
		}
		if in.Barcode != nil {
			if strings.TrimSpace(*in.Barcode) == "" {
				return validationf("product barcode cannot be empty")
			}
			product.Barcode = *in.Barcode
		}
		if in.RFID != nil {
			if strings.TrimSpace(*in.RFID) == "" {
				return validationf("product rfid cannot be empty")
			}
			product.RFID = *in.RFID
		}
		if in.Quantity != nil {
			if *in.Quantity < 0 {
				return validationf("product quantity cannot be negative")
			}
			product.Quantity = *in.Quantity
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		product.UpdatedAt = nowUTC()
		return putDoc(txn, colProducts, id, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product. Cells are placement slots, not owners:
// every cell holding this product has its product reference cleared, and no
// cell is deleted.
func (s *Store) DeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	cleared := 0
	err = s.rw(ctx, func(txn *badger.Txn) error {
		cells, err := scanDocs[models.Cell](txn, colCells)
		if err != nil {
			return err
		}
		for _, c := range cells {
			if c.Product == nil || c.Product.ID != id {
				continue
			}
			c.Product = nil
			c.UpdatedAt = nowUTC()
			if err := putDoc(txn, colCells, c.ID, c); err != nil {
				return err
			}
			cleared++
		}
		return txn.Delete(key(colProducts, id))
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("product deleted", zap.String("id", id), zap.Int("cellsCleared", cleared))
	return product, nil
}
