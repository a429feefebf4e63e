// Package workflow contém os geradores de plano.
//
// São placeholders baseados em regra: o conteúdo é fixo e não depende dos
// campos do input além do user_id (a foto em face_photo_url nunca é lida).
// Persistir o resultado é responsabilidade de quem chama.
package workflow

import (
	"fmt"
	"strings"

	"ruva/models"
)

// MakeFaceAnalysis gera a análise facial para o input.
func MakeFaceAnalysis(in models.UserInput) models.LookmaxxingDetail {
	return models.LookmaxxingDetail{
		UserID:         in.UserID,
		FaceShape:      "oval",
		StrongFeatures: []string{"defined jawline"},
		WeakFeatures:   []string{"under-eye puffiness"},
		Grooming:       []string{"weekly exfoliation", "SPF 50 daily"},
		Hairstyle:      []string{"medium length textured crop"},
		Accessories:    []string{"thin metal frames", "minimalist studs"},
	}
}

// MakePhysiquePlan gera o plano físico de 7 dias.
func MakePhysiquePlan(in models.UserInput) models.PhysiquePlan {
	return models.PhysiquePlan{
		UserID:   in.UserID,
		BodyType: "athletic",
		Workout7Day: []string{
			"Push strength",
			"Pull strength",
			"Legs + core",
			"Active recovery (walk + mobility)",
			"Upper hypertrophy",
			"Lower hypertrophy",
			"Rest + stretch",
		},
		PostureCues: []string{"neck long", "ribs down", "glutes on"},
		DietNotes:   []string{"high protein", "2L water", "500 kcal deficit (if fat loss)"},
	}
}

// MakeStylingPlan gera o plano de vestuário.
func MakeStylingPlan(in models.UserInput) models.StylingPlan {
	return models.StylingPlan{
		UserID:             in.UserID,
		DailyOutfits:       []string{"monochrome black smart-casual", "cream knit + tapered chinos"},
		Colours:            []string{"cream", "black", "light gold"},
		WardrobeEssentials: []string{"white sneakers", "dark denim", "oxford shirt"},
		HairstyleSynergy:   []string{"texture complements jawline"},
	}
}

// MakeGlowUp gera o checklist semana a semana.
func MakeGlowUp(in models.UserInput) models.GlowUpPlan {
	return models.GlowUpPlan{
		UserID: in.UserID,
		WeekByWeek: []string{
			"Week 1: skin baseline + haircut",
			"Week 2: posture daily 10m + wardrobe audit",
			"Week 3: gym routine locked",
			"Week 4: social refresh (bio/photos)",
			"Weeks 5-12: progressions + photos",
		},
	}
}

// MakeSummary compõe os resumos de uma linha a partir dos três planos.
// O separador ", " e a ordem de concatenação fazem parte do contrato.
func MakeSummary(face models.LookmaxxingDetail, phys models.PhysiquePlan, style models.StylingPlan) models.AnalysisSummary {
	return models.AnalysisSummary{
		UserID:          face.UserID,
		FaceSummary:     fmt.Sprintf("Face shape %s; groom: %s", face.FaceShape, strings.Join(face.Grooming, ", ")),
		PhysiqueSummary: fmt.Sprintf("Body %s; posture: %s", phys.BodyType, strings.Join(phys.PostureCues, ", ")),
		StyleSummary:    fmt.Sprintf("Colours: %s", strings.Join(style.Colours, ", ")),
		OutfitSummary:   fmt.Sprintf("Outfits: %s", strings.Join(style.DailyOutfits, ", ")),
	}
}
