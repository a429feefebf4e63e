package models

import (
	"ruva/tools"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UserInputCollection = "userinput"

// Faixas aceitas (inclusivas) para os campos numéricos.
const (
	HEIGHT_CM_MIN = 100
	HEIGHT_CM_MAX = 250
	WEIGHT_KG_MIN = 30
	WEIGHT_KG_MAX = 250
	AGE_MIN       = 13
	AGE_MAX       = 100
)

// UserInput armazena os atributos físicos/estilo enviados pelo usuário.
// Os campos numéricos são ponteiros: nil significa "não informado".
// Um usuário pode ter vários UserInput; não há regra de "último vence".
type UserInput struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID       string             `bson:"user_id" json:"user_id" form:"user_id"`
	FacePhotoURL string             `bson:"face_photo_url,omitempty" json:"face_photo_url,omitempty" form:"face_photo_url"`
	HeightCm     *int               `bson:"height_cm,omitempty" json:"height_cm,omitempty" form:"height_cm"`
	WeightKg     *float64           `bson:"weight_kg,omitempty" json:"weight_kg,omitempty" form:"weight_kg"`
	Age          *int               `bson:"age,omitempty" json:"age,omitempty" form:"age"`
	Goals        string             `bson:"goals,omitempty" json:"goals,omitempty" form:"goals"`
	StyleVibe    string             `bson:"style_vibe,omitempty" json:"style_vibe,omitempty" form:"style_vibe"`
}

// MissingFields devolve o nome do campo inválido ("" quando ok).
// Os limites são inclusivos: height_cm=100 passa, 99 não.
func (in UserInput) MissingFields() string {
	if in.UserID == "" {
		return "user_id"
	}
	if in.HeightCm != nil && !tools.InRangeInt(*in.HeightCm, HEIGHT_CM_MIN, HEIGHT_CM_MAX) {
		return "height_cm"
	}
	if in.WeightKg != nil && !tools.InRangeFloat(*in.WeightKg, WEIGHT_KG_MIN, WEIGHT_KG_MAX) {
		return "weight_kg"
	}
	if in.Age != nil && !tools.InRangeInt(*in.Age, AGE_MIN, AGE_MAX) {
		return "age"
	}
	return ""
}
