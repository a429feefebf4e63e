package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const AnalysisSummaryCollection = "analysissummary"

// AnalysisSummary guarda os resumos de uma rodada do workflow.
// Um usuário acumula um documento por rodada; a busca pega o primeiro.
type AnalysisSummary struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID          string             `bson:"user_id" json:"user_id"`
	FaceSummary     string             `bson:"face_summary" json:"face_summary"`
	PhysiqueSummary string             `bson:"physique_summary" json:"physique_summary"`
	StyleSummary    string             `bson:"style_summary" json:"style_summary"`
	OutfitSummary   string             `bson:"outfit_summary" json:"outfit_summary"`
}
