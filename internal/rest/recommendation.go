package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"recommendation-service/domain"
	"recommendation-service/pkg/logger"
	"recommendation-service/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RecommendationService interface {
	GetGeneralRecommendations(ctx context.Context, limit int, category string) ([]domain.EnrichedRecommendation, int, error)
	GetRecommendationsForProduct(ctx context.Context, productID string) ([]domain.EnrichedRecommendation, int, error)
	CreateRecommendation(ctx context.Context, rec *domain.Recommendation) (*domain.EnrichedRecommendation, error)
}

type RecommendationHandler struct {
	recommendationService RecommendationService
	validator             *validator.Validate
	timeout               time.Duration
}

func NewRecommendationHandler(recommendationService RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		validator:             validator.New(),
		timeout:               10 * time.Second,
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type ProductInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Description *string  `json:"description,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

type RecommendationResponse struct {
	ID        string      `json:"id"`
	Product   ProductInfo `json:"product"`
	Score     float64     `json:"score"`
	Reason    string      `json:"reason"`
	CreatedAt string      `json:"created_at"`
}

type ListRecommendationsQuery struct {
	Limit    int    `query:"limit"`
	Category string `query:"category"`
}

type CreateRecommendationRequest struct {
	ProductID       string  `json:"product_id" validate:"required"`
	TargetProductID *string `json:"target_product_id"`
	Score           float64 `json:"score" validate:"min=0,max=1"`
	Reason          string  `json:"reason" validate:"required,min=1"`
}

type CreateRecommendationResponse struct {
	ID             string                 `json:"id"`
	Message        string                 `json:"message"`
	Recommendation RecommendationResponse `json:"recommendation"`
}

func toProductInfo(p domain.Product) ProductInfo {
	return ProductInfo{
		ID:          p.IDString(),
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Description: p.Description,
		Rating:      p.Rating,
	}
}

func toRecommendationResponses(enriched []domain.EnrichedRecommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(enriched))
	for _, e := range enriched {
		out = append(out, RecommendationResponse{
			ID:        e.Recommendation.ID.Hex(),
			Product:   toProductInfo(e.Product),
			Score:     e.Recommendation.Score,
			Reason:    e.Recommendation.Reason,
			CreatedAt: e.Recommendation.CreatedAt,
		})
	}
	return out
}

// GetRecommendations returns general recommendations enriched with product
// data. GET /recommendations?limit=&category=
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendationLatency.WithLabelValues("list_general").Observe(time.Since(start).Seconds())
	}()

	var q ListRecommendationsQuery
	if err := c.Bind(&q); err != nil {
		logger.Error("Failed to bind query", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	enriched, _, err := h.recommendationService.GetGeneralRecommendations(ctx, q.Limit, q.Category)
	if err != nil {
		logger.Error("Failed to get general recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Internal server error"})
	}

	result := toRecommendationResponses(enriched)
	metrics.RecommendationsServed.Add(float64(len(result)))

	return c.JSON(http.StatusOK, result)
}

// GetProductRecommendations returns recommendations targeting one product.
// GET /recommendations/:product_id
func (h *RecommendationHandler) GetProductRecommendations(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendationLatency.WithLabelValues("list_by_product").Observe(time.Since(start).Seconds())
	}()

	productID := c.Param("product_id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	enriched, _, err := h.recommendationService.GetRecommendationsForProduct(ctx, productID)
	if err != nil {
		logger.Error("Failed to get recommendations for product", err)
		if errors.Is(err, domain.ErrInvalidProductID) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid product ID format"})
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Internal server error"})
	}

	result := toRecommendationResponses(enriched)
	metrics.RecommendationsServed.Add(float64(len(result)))

	return c.JSON(http.StatusOK, result)
}

// CreateRecommendation adds a new recommendation.
// POST /recommendations
func (h *RecommendationHandler) CreateRecommendation(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendationLatency.WithLabelValues("create").Observe(time.Since(start).Seconds())
	}()

	var req CreateRecommendationRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate recommendation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.recommendationService.CreateRecommendation(ctx, &domain.Recommendation{
		ProductID:       req.ProductID,
		TargetProductID: req.TargetProductID,
		Score:           req.Score,
		Reason:          req.Reason,
	})
	if err != nil {
		logger.Error("Failed to create recommendation", err)
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: "Recommended product not found"})
		case errors.Is(err, domain.ErrTargetProductNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: "Target product not found"})
		case errors.Is(err, domain.ErrInvalidProductID):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid product ID format"})
		case errors.Is(err, domain.ErrInvalidTargetProductID):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid target product ID format"})
		case errors.Is(err, domain.ErrValidation):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Internal server error"})
		}
	}

	response := RecommendationResponse{
		ID:        created.Recommendation.ID.Hex(),
		Product:   toProductInfo(created.Product),
		Score:     created.Recommendation.Score,
		Reason:    created.Recommendation.Reason,
		CreatedAt: created.Recommendation.CreatedAt,
	}

	return c.JSON(http.StatusCreated, CreateRecommendationResponse{
		ID:             response.ID,
		Message:        "Recommendation created successfully",
		Recommendation: response,
	})
}
