package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RecommendationTypeGeneral  = "general"
	RecommendationTypeSpecific = "specific"
)

// Recommendation document in the "recommendations" collection. Type is fully
// derived from the presence of TargetProductID and never set independently.
// Category is a denormalized copy of the recommended product's category taken
// at creation time. Timestamps are stored as RFC3339 strings.
type Recommendation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID       string             `bson:"product_id" json:"product_id"`
	TargetProductID *string            `bson:"target_product_id" json:"target_product_id,omitempty"`
	Score           float64            `bson:"score" json:"score"`
	Reason          string             `bson:"reason" json:"reason"`
	Type            string             `bson:"type" json:"type"`
	Category        string             `bson:"category" json:"category"`
	CreatedAt       string             `bson:"created_at" json:"created_at"`
	UpdatedAt       string             `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// RecommendationUpdate carries the mutable fields of a partial update.
type RecommendationUpdate struct {
	Score  *float64
	Reason *string
}

// EnrichedRecommendation pairs a recommendation with the product it
// references, fetched via a secondary lookup.
type EnrichedRecommendation struct {
	Recommendation Recommendation
	Product        Product
}
