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

type ProductService interface {
	GetProductByID(ctx context.Context, rawID string) (*domain.Product, error)
	GetProductsByCategory(ctx context.Context, category string, limit int) ([]domain.Product, error)
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type ProductsByCategoryQuery struct {
	Category string `query:"category" validate:"required"`
	Limit    int    `query:"limit"`
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProductByID(ctx, productID)
	if err != nil {
		logger.Error("Failed to find product by id", err)
		if errors.Is(err, domain.ErrInvalidProductID) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid product ID format"})
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find product by id",
		"product": toProductInfo(*product),
	})
}

func (h *ProductHandler) GetProductsByCategory(c echo.Context) error {
	var q ProductsByCategoryQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetProductsByCategory(ctx, q.Category, q.Limit)
	if err != nil {
		logger.Error("Failed to find products by category", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Internal server error"})
	}

	result := make([]ProductInfo, 0, len(products))
	for _, p := range products {
		result = append(result, toProductInfo(p))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
