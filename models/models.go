package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommendation is an affiliate tool record from the ai_tools collection.
// Records are read-only from the bot's point of view; the collection is
// maintained out of band. AffiliateAmount is materialized by the lookup
// pipeline as a double even when the stored field is text.
type Recommendation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ToolName        string             `bson:"tool_name" json:"tool_name"`
	Category        string             `bson:"category" json:"category"`
	UseCase         string             `bson:"use_case" json:"use_case"`
	AffiliateLink   string             `bson:"affiliate_link" json:"affiliate_link"`
	AffiliateAmount float64            `bson:"amount_value" json:"affiliate_amount"`
}
