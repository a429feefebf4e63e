package controllers

import (
	"os"

	dbpkg "ruva/db"

	"github.com/gin-gonic/gin"
)

// GET /
func Root(c *gin.Context) {
	RespondSuccess(c, gin.H{"name": "RUVA", "status": "ok"})
}

// GET /test
// Diagnóstico de conectividade: nunca devolve erro HTTP, qualquer falha do
// store vira uma string descritiva no payload.
func TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	ctx := c.Request.Context()
	store := dbpkg.StoreInstance(c)
	if store != nil {
		if err := store.Ping(ctx); err != nil {
			response["database"] = "❌ Error: " + truncate(err.Error(), 50)
		} else {
			response["database"] = "✅ Available"
			response["connection_status"] = "Connected"

			collections, err := store.Collections(ctx)
			if err != nil {
				response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
			} else {
				if len(collections) > 10 {
					collections = collections[:10]
				}
				response["collections"] = collections
				response["database"] = "✅ Connected & Working"
			}
		}
	}

	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "✅ Set"
	}
	if os.Getenv("DATABASE_NAME") != "" {
		response["database_name"] = "✅ Set"
	}

	RespondSuccess(c, response)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
