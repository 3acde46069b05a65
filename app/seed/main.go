package main

import (
	"context"
	"log"
	"time"

	"recommendation-service/domain"
	"recommendation-service/pkg/config"
	"recommendation-service/pkg/database"
	"recommendation-service/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the store with sample products and recommendations for local
// testing. Products get integer primary keys on purpose: the API has to
// accept those alongside ObjectIDs.

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

type seedProduct struct {
	ID          int64    `bson:"_id"`
	Name        string   `bson:"name"`
	Category    string   `bson:"category"`
	Price       float64  `bson:"price"`
	Description *string  `bson:"description,omitempty"`
	Rating      *float64 `bson:"rating,omitempty"`
}

var sampleProducts = []seedProduct{
	{ID: 1, Name: "iPhone 15 Pro", Category: "electronics", Price: 999.99, Description: strPtr("Latest iPhone with advanced camera system"), Rating: floatPtr(4.8)},
	{ID: 2, Name: "MacBook Air M2", Category: "electronics", Price: 1199.99, Description: strPtr("Lightweight laptop with M2 chip"), Rating: floatPtr(4.7)},
	{ID: 3, Name: "AirPods Pro", Category: "electronics", Price: 249.99, Description: strPtr("Wireless earbuds with noise cancellation"), Rating: floatPtr(4.6)},
	{ID: 4, Name: "The Great Gatsby", Category: "books", Price: 12.99, Description: strPtr("Classic American novel"), Rating: floatPtr(4.2)},
	{ID: 5, Name: "Running Shoes", Category: "sports", Price: 89.99, Description: strPtr("Comfortable running shoes for daily training"), Rating: floatPtr(4.4)},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	client, db, err := database.InitMongo(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.CloseMongo(client); err != nil {
			logger.Error("Database shutdown error", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products := db.Collection("products")
	recommendations := db.Collection("recommendations")

	// Clear existing data
	if _, err := products.DeleteMany(ctx, bson.M{}); err != nil {
		logger.Fatal("Failed to clear products", "error", err)
	}
	if _, err := recommendations.DeleteMany(ctx, bson.M{}); err != nil {
		logger.Fatal("Failed to clear recommendations", "error", err)
	}

	productDocs := make([]interface{}, 0, len(sampleProducts))
	for _, p := range sampleProducts {
		productDocs = append(productDocs, p)
	}

	if _, err := products.InsertMany(ctx, productDocs); err != nil {
		logger.Fatal("Failed to insert products", "error", err)
	}

	logger.Info("Created products", "count", len(sampleProducts))

	now := time.Now().UTC().Format(time.RFC3339)
	sampleRecommendations := []interface{}{
		// General recommendations
		domain.Recommendation{
			ProductID: "1",
			Score:     0.95,
			Reason:    "Bestselling smartphone with excellent reviews",
			Type:      domain.RecommendationTypeGeneral,
			Category:  "electronics",
			CreatedAt: now,
		},
		domain.Recommendation{
			ProductID: "2",
			Score:     0.90,
			Reason:    "Top-rated laptop for professionals and students",
			Type:      domain.RecommendationTypeGeneral,
			Category:  "electronics",
			CreatedAt: now,
		},
		// Product-specific recommendations for the iPhone
		domain.Recommendation{
			ProductID:       "3",
			TargetProductID: strPtr("1"),
			Score:           0.88,
			Reason:          "Perfect companion for your iPhone - seamless connectivity",
			Type:            domain.RecommendationTypeSpecific,
			Category:        "electronics",
			CreatedAt:       now,
		},
		domain.Recommendation{
			ProductID:       "2",
			TargetProductID: strPtr("1"),
			Score:           0.75,
			Reason:          "Complete Apple ecosystem - works great with iPhone",
			Type:            domain.RecommendationTypeSpecific,
			Category:        "electronics",
			CreatedAt:       now,
		},
		domain.Recommendation{
			ProductID: "4",
			Score:     0.82,
			Reason:    "Classic literature - highly rated by readers",
			Type:      domain.RecommendationTypeGeneral,
			Category:  "books",
			CreatedAt: now,
		},
	}

	if _, err := recommendations.InsertMany(ctx, sampleRecommendations); err != nil {
		logger.Fatal("Failed to insert recommendations", "error", err)
	}

	logger.Info("Created recommendations", "count", len(sampleRecommendations))
	logger.Info("Sample data created successfully")
}
