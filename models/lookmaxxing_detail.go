package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const LookmaxxingDetailCollection = "lookmaxxingdetail"

// LookmaxxingDetail é o resultado da análise facial.
type LookmaxxingDetail struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID         string             `bson:"user_id" json:"user_id"`
	FaceShape      string             `bson:"face_shape" json:"face_shape"`
	StrongFeatures []string           `bson:"strong_features" json:"strong_features"`
	WeakFeatures   []string           `bson:"weak_features" json:"weak_features"`
	Grooming       []string           `bson:"grooming" json:"grooming"`
	Hairstyle      []string           `bson:"hairstyle" json:"hairstyle"`
	Accessories    []string           `bson:"accessories" json:"accessories"`
}
