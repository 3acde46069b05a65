package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"recommendation-service/domain"
	"recommendation-service/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RecommendationAdminService interface {
	GetAllRecommendations(ctx context.Context, limit, skip int, category string) ([]domain.Recommendation, error)
	GetRecommendationByID(ctx context.Context, id string) (domain.Recommendation, error)
	UpdateRecommendation(ctx context.Context, id string, update domain.RecommendationUpdate) (domain.Recommendation, error)
	DeleteRecommendation(ctx context.Context, id string) error
}

type RecommendationAdminHandler struct {
	service  RecommendationAdminService
	validate *validator.Validate
	timeout  time.Duration
}

func NewRecommendationAdminHandler(service RecommendationAdminService) *RecommendationAdminHandler {
	return &RecommendationAdminHandler{
		service:  service,
		validate: validator.New(),
		timeout:  10 * time.Second,
	}
}

type AdminListQuery struct {
	Limit    int    `query:"limit"`
	Skip     int    `query:"skip" validate:"omitempty,min=0"`
	Category string `query:"category"`
}

type UpdateRecommendationRequest struct {
	Score  *float64 `json:"score" validate:"omitempty,min=0,max=1"`
	Reason *string  `json:"reason" validate:"omitempty,min=1"`
}

func (h *RecommendationAdminHandler) GetAllRecommendations(c echo.Context) error {
	var q AdminListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.GetAllRecommendations(ctx, q.Limit, q.Skip, q.Category)
	if err != nil {
		logger.Error("Failed to get all recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Internal server error"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

func (h *RecommendationAdminHandler) GetRecommendationByID(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rec, err := h.service.GetRecommendationByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get recommendation by id", err)
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":        "successfully find recommendation by id",
		"recommendation": rec,
	})
}

func (h *RecommendationAdminHandler) UpdateRecommendation(c echo.Context) error {
	id := c.Param("id")

	var req UpdateRecommendationRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate update request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.service.UpdateRecommendation(ctx, id, domain.RecommendationUpdate{
		Score:  req.Score,
		Reason: req.Reason,
	})
	if err != nil {
		logger.Error("Failed to update recommendation", err)
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":        "successfully update recommendation",
		"recommendation": updated,
	})
}

func (h *RecommendationAdminHandler) DeleteRecommendation(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.service.DeleteRecommendation(ctx, id); err != nil {
		logger.Error("Failed to delete recommendation", err)
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":           "recommendation successfully deleted",
		"recommendation_id": id,
	})
}

func (h *RecommendationAdminHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRecommendationID):
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid recommendation ID format"})
	case errors.Is(err, domain.ErrRecommendationNotFound):
		return c.JSON(http.StatusNotFound, ResponseError{Message: "Recommendation not found"})
	default:
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Internal server error"})
	}
}
