package controllers

import (
	"net/http"

	dbpkg "ruva/db"
	"ruva/models"
	"ruva/workflow"

	"github.com/gin-gonic/gin"
)

type WorkflowRequest struct {
	UserID string `json:"user_id" form:"user_id"`
}

// POST /workflow/run
// Busca um UserInput do usuário (ou um registro mínimo, se não houver),
// roda os quatro geradores mais o resumo e persiste os cinco documentos.
//
// As cinco escritas NÃO são atômicas: uma falha no meio deixa os documentos
// já gravados na base e o cliente recebe só o erro. Transação multi-documento
// exigiria replica set no Mongo, então o comportamento original foi mantido.
func RunWorkflow(c *gin.Context) {
	var req WorkflowRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		RespondError(c, "invalid field: user_id", http.StatusBadRequest)
		return
	}

	store := dbpkg.StoreInstance(c)
	if store == nil {
		RespondError(c, "store not configured in context", http.StatusInternalServerError)
		return
	}

	ctx := c.Request.Context()

	var inputs []models.UserInput
	if err := store.GetDocuments(ctx, models.UserInputCollection, map[string]any{"user_id": req.UserID}, 1, &inputs); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	base := models.UserInput{UserID: req.UserID}
	if len(inputs) > 0 {
		base = inputs[0]
	}

	face := workflow.MakeFaceAnalysis(base)
	phys := workflow.MakePhysiquePlan(base)
	style := workflow.MakeStylingPlan(base)
	glow := workflow.MakeGlowUp(base)
	summary := workflow.MakeSummary(face, phys, style)

	writes := []struct {
		collection string
		record     any
	}{
		{models.LookmaxxingDetailCollection, face},
		{models.PhysiquePlanCollection, phys},
		{models.StylingPlanCollection, style},
		{models.GlowUpPlanCollection, glow},
		{models.AnalysisSummaryCollection, summary},
	}
	for _, w := range writes {
		if _, err := store.CreateDocument(ctx, w.collection, w.record); err != nil {
			RespondError(c, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	RespondSuccess(c, gin.H{
		"summary":  summary,
		"face":     face,
		"physique": phys,
		"styling":  style,
		"glow":     glow,
	})
}
