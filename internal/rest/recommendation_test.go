package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recommendation-service/domain"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeRecommendationService serves the scenario: products 1 ("A") and
// 2 ("B") exist, and product 2 is recommended for product 1.
type fakeRecommendationService struct {
	createCalls int
}

func (f *fakeRecommendationService) GetGeneralRecommendations(_ context.Context, limit int, category string) ([]domain.EnrichedRecommendation, int, error) {
	return []domain.EnrichedRecommendation{enrichedEntry()}, 0, nil
}

func (f *fakeRecommendationService) GetRecommendationsForProduct(_ context.Context, productID string) ([]domain.EnrichedRecommendation, int, error) {
	if _, err := domain.ResolveProductKey(productID); err != nil {
		return nil, 0, err
	}
	if productID != "1" {
		return nil, 0, domain.ErrProductNotFound
	}
	return []domain.EnrichedRecommendation{enrichedEntry()}, 0, nil
}

func (f *fakeRecommendationService) CreateRecommendation(_ context.Context, rec *domain.Recommendation) (*domain.EnrichedRecommendation, error) {
	f.createCalls++
	if _, err := domain.ResolveProductKey(rec.ProductID); err != nil {
		return nil, err
	}
	if rec.ProductID != "1" && rec.ProductID != "2" {
		return nil, domain.ErrProductNotFound
	}
	entry := enrichedEntry()
	entry.Recommendation.ProductID = rec.ProductID
	entry.Recommendation.Score = rec.Score
	entry.Recommendation.Reason = rec.Reason
	return &entry, nil
}

func enrichedEntry() domain.EnrichedRecommendation {
	target := "1"
	return domain.EnrichedRecommendation{
		Recommendation: domain.Recommendation{
			ID:              primitive.NewObjectID(),
			ProductID:       "2",
			TargetProductID: &target,
			Score:           0.9,
			Reason:          "r",
			Type:            domain.RecommendationTypeSpecific,
			Category:        "x",
			CreatedAt:       "2025-01-02T03:04:05Z",
		},
		Product: domain.Product{ID: int64(2), Name: "B", Category: "x", Price: 20},
	}
}

func newHandlerContext(t *testing.T, method, path, body string) (*RecommendationHandler, echo.Context, *httptest.ResponseRecorder, *fakeRecommendationService) {
	t.Helper()

	svc := &fakeRecommendationService{}
	h := NewRecommendationHandler(svc)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	return h, c, rec, svc
}

func TestGetRecommendations_OK(t *testing.T) {
	h, c, rec, _ := newHandlerContext(t, http.MethodGet, "/api/v1/recommendations?limit=5", "")

	if err := h.GetRecommendations(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result []RecommendationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("len = %d, want 1", len(result))
	}
	if result[0].Product.ID != "2" {
		t.Errorf("product.id = %s, want 2", result[0].Product.ID)
	}
}

func TestGetProductRecommendations_OK(t *testing.T) {
	h, c, rec, _ := newHandlerContext(t, http.MethodGet, "/api/v1/recommendations/1", "")
	c.SetPath("/api/v1/recommendations/:product_id")
	c.SetParamNames("product_id")
	c.SetParamValues("1")

	if err := h.GetProductRecommendations(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result []RecommendationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("len = %d, want 1", len(result))
	}
	if result[0].Product.ID != "2" {
		t.Errorf("product.id = %s, want 2", result[0].Product.ID)
	}
}

func TestGetProductRecommendations_ProductMissing(t *testing.T) {
	h, c, rec, _ := newHandlerContext(t, http.MethodGet, "/api/v1/recommendations/999", "")
	c.SetPath("/api/v1/recommendations/:product_id")
	c.SetParamNames("product_id")
	c.SetParamValues("999")

	if err := h.GetProductRecommendations(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetProductRecommendations_MalformedID(t *testing.T) {
	h, c, rec, _ := newHandlerContext(t, http.MethodGet, "/api/v1/recommendations/not-an-id", "")
	c.SetPath("/api/v1/recommendations/:product_id")
	c.SetParamNames("product_id")
	c.SetParamValues("not-an-id")

	if err := h.GetProductRecommendations(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateRecommendation_Created(t *testing.T) {
	body := `{"product_id":"2","target_product_id":"1","score":0.9,"reason":"pairs well"}`
	h, c, rec, _ := newHandlerContext(t, http.MethodPost, "/api/v1/recommendations", body)

	if err := h.CreateRecommendation(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}

	var result CreateRecommendationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.Message != "Recommendation created successfully" {
		t.Errorf("message = %q", result.Message)
	}
	if result.Recommendation.Score != 0.9 {
		t.Errorf("score = %v, want 0.9", result.Recommendation.Score)
	}
}

func TestCreateRecommendation_RecommendedProductMissing(t *testing.T) {
	body := `{"product_id":"999","score":0.5,"reason":"r"}`
	h, c, rec, _ := newHandlerContext(t, http.MethodPost, "/api/v1/recommendations", body)

	if err := h.CreateRecommendation(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var resp ResponseError
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "Recommended product not found" {
		t.Errorf("message = %q, want %q", resp.Message, "Recommended product not found")
	}
}

func TestCreateRecommendation_ScoreOutOfRange(t *testing.T) {
	body := `{"product_id":"1","score":1.5,"reason":"r"}`
	h, c, rec, svc := newHandlerContext(t, http.MethodPost, "/api/v1/recommendations", body)

	if err := h.CreateRecommendation(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if svc.createCalls != 0 {
		t.Errorf("service reached despite validation failure")
	}
}

func TestCreateRecommendation_MissingReason(t *testing.T) {
	body := `{"product_id":"1","score":0.5}`
	h, c, rec, svc := newHandlerContext(t, http.MethodPost, "/api/v1/recommendations", body)

	if err := h.CreateRecommendation(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if svc.createCalls != 0 {
		t.Errorf("service reached despite validation failure")
	}
}
