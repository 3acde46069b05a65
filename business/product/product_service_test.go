package product

import (
	"context"
	"errors"
	"testing"

	"recommendation-service/domain"
)

type fakeProductRepo struct {
	products   map[string]domain.Product
	byCategory map[string][]domain.Product

	lastLimit int64
}

func (f *fakeProductRepo) FindByKey(_ context.Context, key domain.ProductKey) (domain.Product, error) {
	p, ok := f.products[key.String()]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) FindByCategory(_ context.Context, category string, limit int64) ([]domain.Product, error) {
	f.lastLimit = limit
	return f.byCategory[category], nil
}

func TestGetProductByID(t *testing.T) {
	repo := &fakeProductRepo{products: map[string]domain.Product{
		"1": {ID: int64(1), Name: "A", Category: "x", Price: 10},
		"507f1f77bcf86cd799439011": {ID: int64(2), Name: "B", Category: "x", Price: 20},
	}}
	svc := NewProductService(repo)

	p, err := svc.GetProductByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "A" {
		t.Errorf("name = %s, want A", p.Name)
	}

	// ObjectID-form identifiers resolve too
	p, err = svc.GetProductByID(context.Background(), "507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "B" {
		t.Errorf("name = %s, want B", p.Name)
	}

	if _, err := svc.GetProductByID(context.Background(), "999"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("error = %v, want ErrProductNotFound", err)
	}

	if _, err := svc.GetProductByID(context.Background(), "not-an-id"); !errors.Is(err, domain.ErrInvalidProductID) {
		t.Errorf("error = %v, want ErrInvalidProductID", err)
	}
}

func TestGetProductsByCategory_DefaultLimit(t *testing.T) {
	repo := &fakeProductRepo{byCategory: map[string][]domain.Product{
		"books": {{ID: int64(4), Name: "Gatsby", Category: "books", Price: 12.99}},
	}}
	svc := NewProductService(repo)

	products, err := svc.GetProductsByCategory(context.Background(), "books", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("len = %d, want 1", len(products))
	}
	if repo.lastLimit != 20 {
		t.Errorf("default limit = %d, want 20", repo.lastLimit)
	}

	if _, err := svc.GetProductsByCategory(context.Background(), "toys", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastLimit != 5 {
		t.Errorf("limit = %d, want 5", repo.lastLimit)
	}
}
