package recommendation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recommendation-service/domain"
	"recommendation-service/pkg/logger"
	"recommendation-service/pkg/metrics"
)

const (
	defaultListLimit      = 10
	defaultAdminListLimit = 50
	maxListLimit          = 100

	// Cap on recommendations returned for a single product.
	perProductLimit = 10
)

// RecommendationRepository contract interface
type RecommendationRepository interface {
	Create(ctx context.Context, rec *domain.Recommendation) (string, error)
	FindAll(ctx context.Context, limit, skip int64, category string) ([]domain.Recommendation, error)
	FindByTarget(ctx context.Context, productID string, limit int64) ([]domain.Recommendation, error)
	FindGeneral(ctx context.Context, limit int64, category string) ([]domain.Recommendation, error)
	FindByID(ctx context.Context, id string) (domain.Recommendation, error)
	Update(ctx context.Context, id string, update domain.RecommendationUpdate) error
	Delete(ctx context.Context, id string) error
}

// ProductRepository is the slice of the product store this workflow needs.
type ProductRepository interface {
	FindByKey(ctx context.Context, key domain.ProductKey) (domain.Product, error)
}

type recommendationService struct {
	recommendationRepo RecommendationRepository
	productRepo        ProductRepository
}

func NewRecommendationService(recommendationRepo RecommendationRepository, productRepo ProductRepository) *recommendationService {
	return &recommendationService{
		recommendationRepo: recommendationRepo,
		productRepo:        productRepo,
	}
}

// GetGeneralRecommendations lists general (not product-bound) recommendations
// enriched with product data. Returns the enriched list plus the number of
// records dropped because their product could not be fetched.
func (s *recommendationService) GetGeneralRecommendations(ctx context.Context, limit int, category string) ([]domain.EnrichedRecommendation, int, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get general recommendations")
		return nil, 0, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	recs, err := s.recommendationRepo.FindGeneral(ctx, int64(limit), category)
	if err != nil {
		logger.Error("failed to find general recommendations", err)
		return nil, 0, err
	}

	enriched, dropped := s.enrich(ctx, recs)

	logger.Debug("general_recommendations",
		"trace_id", TraceIDFromContext(ctx),
		"category", category,
		"fetched", len(recs),
		"dropped", dropped,
	)

	return enriched, dropped, nil
}

// GetRecommendationsForProduct lists recommendations targeting the given
// product. The target must exist: a malformed id and a missing product are
// distinct failures so the caller can map them to different statuses. An
// existing product with no recommendations yields an empty list, not an
// error.
func (s *recommendationService) GetRecommendationsForProduct(ctx context.Context, productID string) ([]domain.EnrichedRecommendation, int, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get recommendations for product")
		return nil, 0, fmt.Errorf("context error: %w", err)
	}

	key, err := domain.ResolveProductKey(productID)
	if err != nil {
		logger.Error("invalid product id", "product_id", productID)
		return nil, 0, err
	}

	if _, err := s.productRepo.FindByKey(ctx, key); err != nil {
		logger.Error("failed to find target product", err)
		return nil, 0, err
	}

	// Recommendations reference the target by the raw identifier string.
	recs, err := s.recommendationRepo.FindByTarget(ctx, productID, perProductLimit)
	if err != nil {
		logger.Error("failed to find recommendations for product", err)
		return nil, 0, err
	}

	enriched, dropped := s.enrich(ctx, recs)

	logger.Debug("product_recommendations",
		"trace_id", TraceIDFromContext(ctx),
		"product_id", productID,
		"fetched", len(recs),
		"dropped", dropped,
	)

	return enriched, dropped, nil
}

// CreateRecommendation validates both product references, derives the
// recommendation type, stamps category and creation time and persists the
// document. The caller supplies ProductID, TargetProductID, Score and Reason.
func (s *recommendationService) CreateRecommendation(ctx context.Context, rec *domain.Recommendation) (*domain.EnrichedRecommendation, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create recommendation")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if rec.Score < 0 || rec.Score > 1 {
		logger.Error("invalid recommendation data: score out of range", "score", rec.Score)
		return nil, fmt.Errorf("%w: score must be between 0.0 and 1.0", domain.ErrValidation)
	}

	if rec.Reason == "" {
		logger.Error("invalid recommendation data: reason is required")
		return nil, fmt.Errorf("%w: reason is required", domain.ErrValidation)
	}

	recommendedProduct, err := s.findProduct(ctx, rec.ProductID)
	if err != nil {
		logger.Error("failed to validate recommended product", err)
		return nil, err
	}

	if rec.TargetProductID != nil {
		if _, err := s.findProduct(ctx, *rec.TargetProductID); err != nil {
			logger.Error("failed to validate target product", err)
			return nil, asTargetError(err)
		}
	}

	rec.Type = domain.RecommendationTypeGeneral
	if rec.TargetProductID != nil {
		rec.Type = domain.RecommendationTypeSpecific
	}
	rec.Category = recommendedProduct.Category
	rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if _, err := s.recommendationRepo.Create(ctx, rec); err != nil {
		logger.Error("failed to create recommendation", err)
		return nil, err
	}

	metrics.RecommendationsCreated.Inc()

	logger.Info("recommendation created",
		"trace_id", TraceIDFromContext(ctx),
		"recommendation_id", rec.ID.Hex(),
		"product_id", rec.ProductID,
		"type", rec.Type,
	)

	return &domain.EnrichedRecommendation{
		Recommendation: *rec,
		Product:        recommendedProduct,
	}, nil
}

func (s *recommendationService) GetAllRecommendations(ctx context.Context, limit, skip int, category string) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all recommendations")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = defaultAdminListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if skip < 0 {
		skip = 0
	}

	recs, err := s.recommendationRepo.FindAll(ctx, int64(limit), int64(skip), category)
	if err != nil {
		logger.Error("failed to find all recommendations", err)
		return nil, err
	}

	return recs, nil
}

func (s *recommendationService) GetRecommendationByID(ctx context.Context, id string) (domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get recommendation by id")
		return domain.Recommendation{}, fmt.Errorf("context error: %w", err)
	}

	rec, err := s.recommendationRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find recommendation by id", err)
		return domain.Recommendation{}, err
	}

	return rec, nil
}

func (s *recommendationService) UpdateRecommendation(ctx context.Context, id string, update domain.RecommendationUpdate) (domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when update recommendation")
		return domain.Recommendation{}, fmt.Errorf("context error: %w", err)
	}

	if update.Score != nil && (*update.Score < 0 || *update.Score > 1) {
		logger.Error("invalid recommendation data: score out of range", "score", *update.Score)
		return domain.Recommendation{}, fmt.Errorf("%w: score must be between 0.0 and 1.0", domain.ErrValidation)
	}

	if update.Reason != nil && *update.Reason == "" {
		logger.Error("invalid recommendation data: reason cannot be empty")
		return domain.Recommendation{}, fmt.Errorf("%w: reason cannot be empty", domain.ErrValidation)
	}

	if err := s.recommendationRepo.Update(ctx, id, update); err != nil {
		logger.Error("failed to update recommendation", err)
		return domain.Recommendation{}, err
	}

	updated, err := s.recommendationRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to fetch updated recommendation", err)
		return domain.Recommendation{}, fmt.Errorf("failed to fetch updated recommendation: %w", err)
	}

	logger.Info("recommendation updated", "recommendation_id", id)

	return updated, nil
}

func (s *recommendationService) DeleteRecommendation(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when delete recommendation")
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.recommendationRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete recommendation", err)
		return err
	}

	logger.Info("recommendation deleted", "recommendation_id", id)

	return nil
}

// enrich fetches the recommended product for each record. A record whose
// product cannot be resolved or fetched is dropped silently so a single
// broken reference never fails the whole listing. The drop count is returned
// so callers and tests can observe the behavior.
func (s *recommendationService) enrich(ctx context.Context, recs []domain.Recommendation) ([]domain.EnrichedRecommendation, int) {
	enriched := make([]domain.EnrichedRecommendation, 0, len(recs))
	dropped := 0

	for _, rec := range recs {
		key, err := domain.ResolveProductKey(rec.ProductID)
		if err != nil {
			logger.Warn("skipping recommendation with malformed product id",
				"recommendation_id", rec.ID.Hex(),
				"product_id", rec.ProductID,
			)
			dropped++
			continue
		}

		product, err := s.productRepo.FindByKey(ctx, key)
		if err != nil {
			logger.Warn("skipping recommendation with unavailable product",
				"recommendation_id", rec.ID.Hex(),
				"product_id", rec.ProductID,
				"error", err,
			)
			dropped++
			continue
		}

		enriched = append(enriched, domain.EnrichedRecommendation{
			Recommendation: rec,
			Product:        product,
		})
	}

	if dropped > 0 {
		metrics.EnrichmentDropped.Add(float64(dropped))
	}

	return enriched, dropped
}

func (s *recommendationService) findProduct(ctx context.Context, rawID string) (domain.Product, error) {
	key, err := domain.ResolveProductKey(rawID)
	if err != nil {
		return domain.Product{}, err
	}

	return s.productRepo.FindByKey(ctx, key)
}

// asTargetError rewrites product lookup failures for the optional target so
// the handler can report which reference was bad.
func asTargetError(err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return domain.ErrTargetProductNotFound
	case errors.Is(err, domain.ErrInvalidProductID):
		return domain.ErrInvalidTargetProductID
	default:
		return err
	}
}
