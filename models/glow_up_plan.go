package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const GlowUpPlanCollection = "glowupplan"

// GlowUpPlan é o checklist semana a semana gerado pelo workflow.
type GlowUpPlan struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID     string             `bson:"user_id" json:"user_id"`
	WeekByWeek []string           `bson:"week_by_week" json:"week_by_week"`
}
