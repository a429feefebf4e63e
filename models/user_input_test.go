package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// Limites inclusivos: o valor na borda passa, um fora rejeita.
func TestUserInput_MissingFields_Ranges(t *testing.T) {
	tests := []struct {
		name     string
		input    UserInput
		expected string
	}{
		{"only user_id", UserInput{UserID: "u1"}, ""},
		{"missing user_id", UserInput{}, "user_id"},

		{"height lower bound", UserInput{UserID: "u1", HeightCm: intPtr(100)}, ""},
		{"height below range", UserInput{UserID: "u1", HeightCm: intPtr(99)}, "height_cm"},
		{"height upper bound", UserInput{UserID: "u1", HeightCm: intPtr(250)}, ""},
		{"height above range", UserInput{UserID: "u1", HeightCm: intPtr(251)}, "height_cm"},

		{"weight lower bound", UserInput{UserID: "u1", WeightKg: floatPtr(30)}, ""},
		{"weight below range", UserInput{UserID: "u1", WeightKg: floatPtr(29.9)}, "weight_kg"},
		{"weight upper bound", UserInput{UserID: "u1", WeightKg: floatPtr(250)}, ""},
		{"weight above range", UserInput{UserID: "u1", WeightKg: floatPtr(250.1)}, "weight_kg"},

		{"age lower bound", UserInput{UserID: "u1", Age: intPtr(13)}, ""},
		{"age below range", UserInput{UserID: "u1", Age: intPtr(12)}, "age"},
		{"age upper bound", UserInput{UserID: "u1", Age: intPtr(100)}, ""},
		{"age above range", UserInput{UserID: "u1", Age: intPtr(101)}, "age"},

		{
			"full valid input",
			UserInput{
				UserID:       "u1",
				FacePhotoURL: "https://example.com/face.jpg",
				HeightCm:     intPtr(180),
				WeightKg:     floatPtr(75.5),
				Age:          intPtr(27),
				Goals:        "lean bulk",
				StyleVibe:    "minimal",
			},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.MissingFields())
		})
	}
}
