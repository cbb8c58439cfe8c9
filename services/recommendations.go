package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"aitoolmate-bot/models"
)

// DefaultLookupLimit caps how many tools one reply lists.
const DefaultLookupLimit = 3

// lookupTimeout bounds a single query so a slow store cannot hang the turn.
const lookupTimeout = 15 * time.Second

// RecommendationStore reads ranked affiliate tool records from MongoDB.
type RecommendationStore struct {
	coll *mongo.Collection
}

// NewRecommendationStore wraps the given collection.
func NewRecommendationStore(coll *mongo.Collection) *RecommendationStore {
	return &RecommendationStore{coll: coll}
}

// Lookup returns up to limit records whose category contains the given
// category, ranked by affiliate amount descending. Records without an
// affiliate link are excluded. A category with no qualifying records
// yields an empty slice, not an error.
//
// Category values reach this method only from the classifier, which
// validates them against the closed catalog; the regex below is still
// QuoteMeta-escaped and bound as a bson value, never formatted into a
// query string.
func (s *RecommendationStore) Lookup(ctx context.Context, category Category, limit int) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = DefaultLookupLimit
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	cursor, err := s.coll.Aggregate(ctx, buildLookupPipeline(category, limit))
	if err != nil {
		return nil, fmt.Errorf("tool lookup for %q: %w", category, err)
	}
	defer cursor.Close(ctx)

	var recs []models.Recommendation
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode tool records for %q: %w", category, err)
	}

	slog.Info("Tool lookup completed", "category", string(category), "results", len(recs))
	return recs, nil
}

// buildLookupPipeline assembles the aggregation stages: filter by category
// containment and non-empty affiliate link, cast the amount to double
// (the field is text in some source rows), sort descending, cap at limit.
// Sort ties keep the store's natural order, which Mongo's stable sort
// preserves per query.
func buildLookupPipeline(category Category, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"category": primitive.Regex{
				Pattern: regexp.QuoteMeta(string(category)),
				Options: "i",
			},
			"affiliate_link": bson.M{"$nin": bson.A{nil, ""}},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"amount_value": bson.M{"$convert": bson.M{
				"input":   "$affiliate_amount",
				"to":      "double",
				"onError": 0,
				"onNull":  0,
			}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "amount_value", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
}
