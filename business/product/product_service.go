package product

import (
	"context"
	"fmt"

	"recommendation-service/domain"
	"recommendation-service/pkg/logger"
)

const defaultCategoryLimit = 20

// ProductRepository contract interface
type ProductRepository interface {
	FindByKey(ctx context.Context, key domain.ProductKey) (domain.Product, error)
	FindByCategory(ctx context.Context, category string, limit int64) ([]domain.Product, error)
}

type productService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *productService {
	return &productService{
		productRepo: productRepo,
	}
}

// GetProductByID resolves the raw identifier (integer first, ObjectID
// fallback) and fetches the matching document.
func (s *productService) GetProductByID(ctx context.Context, rawID string) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product by id")
		return nil, fmt.Errorf("context error: %w", err)
	}

	key, err := domain.ResolveProductKey(rawID)
	if err != nil {
		logger.Error("invalid product id", "product_id", rawID)
		return nil, err
	}

	product, err := s.productRepo.FindByKey(ctx, key)
	if err != nil {
		logger.Error("failed to find product by id", err)
		return nil, err
	}

	return &product, nil
}

func (s *productService) GetProductsByCategory(ctx context.Context, category string, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get products by category")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = defaultCategoryLimit
	}

	products, err := s.productRepo.FindByCategory(ctx, category, int64(limit))
	if err != nil {
		logger.Error("failed to find products by category", err)
		return nil, err
	}

	return products, nil
}
