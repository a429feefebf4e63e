package controllers

import (
	"net/http"

	dbpkg "ruva/db"
	"ruva/models"

	"github.com/gin-gonic/gin"
)

// POST /input
// Valida e grava um UserInput. O user_id não é conferido contra a collection
// de usuários (sem integridade referencial, igual ao comportamento original).
func SaveUserInput(c *gin.Context) {
	var input models.UserInput
	if err := c.Bind(&input); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	missing := input.MissingFields()
	if missing != "" {
		RespondError(c, "invalid field: "+missing, http.StatusBadRequest)
		return
	}

	store := dbpkg.StoreInstance(c)
	if store == nil {
		RespondError(c, "store not configured in context", http.StatusInternalServerError)
		return
	}

	inputID, err := store.CreateDocument(c.Request.Context(), models.UserInputCollection, input)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"input_id": inputID})
}
