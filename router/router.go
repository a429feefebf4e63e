package router

import (
	"ruva/controllers"
	dbpkg "ruva/db"
	"ruva/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares.
// O store entra no contexto aqui, uma vez, antes do listener subir.
func Initialize(r *gin.Engine, store dbpkg.Store) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(RequestID())
	r.Use(dbpkg.SetStoreToContext(store))

	// Liveness + diagnóstico
	r.GET("/", controllers.Root)
	r.GET("/test", Logger(), controllers.TestDatabase)

	// Auth (mínima, sem emissão de token)
	r.POST("/auth/signup", Logger(), controllers.Signup)
	r.POST("/auth/login", Logger(), controllers.Login)
	r.POST("/auth/guest", Logger(), controllers.GuestLogin)

	// Input do usuário
	r.POST("/input", Logger(), controllers.SaveUserInput)

	// Workflow + resultados
	r.POST("/workflow/run", Logger(), controllers.RunWorkflow)
	r.GET("/summary/:user_id", Logger(), controllers.GetLatestSummary)

	logger.Info().Msg("routes initialized")
}
