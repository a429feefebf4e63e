package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const StylingPlanCollection = "stylingplan"

// StylingPlan é o plano de vestuário gerado pelo workflow.
type StylingPlan struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID             string             `bson:"user_id" json:"user_id"`
	DailyOutfits       []string           `bson:"daily_outfits" json:"daily_outfits"`
	Colours            []string           `bson:"colours" json:"colours"`
	WardrobeEssentials []string           `bson:"wardrobe_essentials" json:"wardrobe_essentials"`
	HairstyleSynergy   []string           `bson:"hairstyle_synergy" json:"hairstyle_synergy"`
}
