package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recommendation-service/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recommendationCollectionName = "recommendations"

// Recommendations are always listed highest score first.
var sortByScoreDesc = bson.D{{Key: "score", Value: -1}}

type RecommendationRepository struct {
	collection *mongo.Collection
}

func NewRecommendationRepository(db *mongo.Database) *RecommendationRepository {
	return &RecommendationRepository{
		collection: db.Collection(recommendationCollectionName),
	}
}

func (r *RecommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	result, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("failed to insert recommendation: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: insert returned no object id", domain.ErrStorage)
	}

	rec.ID = oid
	return oid.Hex(), nil
}

func (r *RecommendationRepository) FindAll(ctx context.Context, limit, skip int64, category string) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	findOptions := options.Find().SetSort(sortByScoreDesc)
	if skip > 0 {
		findOptions.SetSkip(skip)
	}
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	return r.find(ctx, filter, findOptions)
}

func (r *RecommendationRepository) FindByTarget(ctx context.Context, productID string, limit int64) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	filter := bson.M{"target_product_id": productID}
	findOptions := options.Find().SetSort(sortByScoreDesc)
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	return r.find(ctx, filter, findOptions)
}

func (r *RecommendationRepository) FindGeneral(ctx context.Context, limit int64, category string) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	filter := bson.M{"type": domain.RecommendationTypeGeneral}
	if category != "" {
		filter["category"] = category
	}

	findOptions := options.Find().SetSort(sortByScoreDesc)
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	return r.find(ctx, filter, findOptions)
}

func (r *RecommendationRepository) FindByID(ctx context.Context, id string) (domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Recommendation{}, fmt.Errorf("context error: %w", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Recommendation{}, domain.ErrInvalidRecommendationID
	}

	var rec domain.Recommendation
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Recommendation{}, domain.ErrRecommendationNotFound
		}
		return domain.Recommendation{}, fmt.Errorf("failed to find recommendation: %w", err)
	}

	return rec, nil
}

func (r *RecommendationRepository) Update(ctx context.Context, id string, update domain.RecommendationUpdate) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidRecommendationID
	}

	set := bson.M{
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if update.Score != nil {
		set["score"] = *update.Score
	}
	if update.Reason != nil {
		set["reason"] = *update.Reason
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update recommendation: %w", err)
	}

	if result.MatchedCount == 0 {
		return domain.ErrRecommendationNotFound
	}

	return nil
}

func (r *RecommendationRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidRecommendationID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete recommendation: %w", err)
	}

	if result.DeletedCount == 0 {
		return domain.ErrRecommendationNotFound
	}

	return nil
}

func (r *RecommendationRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]domain.Recommendation, error) {
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find recommendations: %w", err)
	}
	defer cursor.Close(ctx)

	recommendations := make([]domain.Recommendation, 0)
	if err := cursor.All(ctx, &recommendations); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}

	return recommendations, nil
}
