package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const PhysiquePlanCollection = "physiqueplan"

// PhysiquePlan é o plano de treino/postura/dieta gerado pelo workflow.
type PhysiquePlan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID      string             `bson:"user_id" json:"user_id"`
	BodyType    string             `bson:"body_type" json:"body_type"`
	Workout7Day []string           `bson:"workout_7_day" json:"workout_7_day"`
	PostureCues []string           `bson:"posture_cues" json:"posture_cues"`
	DietNotes   []string           `bson:"diet_notes" json:"diet_notes"`
}
