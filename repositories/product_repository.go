package repositories

import (
	"context"
	"fmt"

	"bar-bike/models"
	"bar-bike/store"
)

// ProductRepository owns the catalog collection. Every call reads the whole
// table, mutates it in memory and writes it back.
type ProductRepository struct {
	table *store.Table[models.Product]
}

// NewProductRepository seeds the table with seed when its key is absent.
func NewProductRepository(ctx context.Context, table *store.Table[models.Product], seed []models.Product) (*ProductRepository, error) {
	if _, err := table.InitializeIfAbsent(ctx, seed); err != nil {
		return nil, fmt.Errorf("initialize products: %w", err)
	}
	return &ProductRepository{table: table}, nil
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	return r.table.Read(ctx)
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	products, err := r.table.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

// Upsert replaces the product with the same id in place, or prepends it when
// the id is new. Field values are stored as given.
func (r *ProductRepository) Upsert(ctx context.Context, product models.Product) (models.Product, error) {
	err := r.table.Update(ctx, func(products []models.Product) ([]models.Product, error) {
		for i := range products {
			if products[i].ID == product.ID {
				products[i] = product
				return products, nil
			}
		}
		return append([]models.Product{product}, products...), nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Delete removes every product with id. An unknown id is not an error.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.table.Update(ctx, func(products []models.Product) ([]models.Product, error) {
		kept := make([]models.Product, 0, len(products))
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return kept, nil
	})
}
