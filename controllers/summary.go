package controllers

import (
	"net/http"

	dbpkg "ruva/db"
	"ruva/models"

	"github.com/gin-gonic/gin"
)

// GET /summary/:user_id
// Devolve o primeiro AnalysisSummary do usuário, com o _id como string.
func GetLatestSummary(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		RespondError(c, "user_id is required", http.StatusBadRequest)
		return
	}

	store := dbpkg.StoreInstance(c)
	if store == nil {
		RespondError(c, "store not configured in context", http.StatusInternalServerError)
		return
	}

	var docs []models.AnalysisSummary
	if err := store.GetDocuments(c.Request.Context(), models.AnalysisSummaryCollection, map[string]any{"user_id": userID}, 1, &docs); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(docs) == 0 {
		RespondError(c, "No summary yet", http.StatusNotFound)
		return
	}

	doc := docs[0]
	RespondSuccess(c, gin.H{
		"_id":              doc.ID.Hex(),
		"user_id":          doc.UserID,
		"face_summary":     doc.FaceSummary,
		"physique_summary": doc.PhysiqueSummary,
		"style_summary":    doc.StyleSummary,
		"outfit_summary":   doc.OutfitSummary,
	})
}
