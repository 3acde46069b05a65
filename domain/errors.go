package domain

import "errors"

var (
	ErrInvalidProductID        = errors.New("invalid product id format")
	ErrInvalidTargetProductID  = errors.New("invalid target product id format")
	ErrProductNotFound         = errors.New("product not found")
	ErrTargetProductNotFound   = errors.New("target product not found")
	ErrInvalidRecommendationID = errors.New("invalid recommendation id format")
	ErrRecommendationNotFound  = errors.New("recommendation not found")
	ErrValidation              = errors.New("validation error")
	ErrStorage                 = errors.New("storage error")
)
