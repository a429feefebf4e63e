package controllers

import (
	"net/http"

	dbpkg "ruva/db"
	"ruva/models"
	"ruva/tools"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type GuestLoginRequest struct {
	Email string `json:"email" form:"email"`
}

// passwordHash reproduz o "hash" do backend original: prefixo em texto puro.
// NÃO é um mecanismo de segurança; mantido por compatibilidade com os
// registros já existentes na base.
func passwordHash(password string) string {
	return "hash:" + password
}

// POST /auth/signup
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		RespondError(c, "email and password are required", http.StatusBadRequest)
		return
	}
	if !tools.ValidateEmail(req.Email) {
		RespondError(c, "invalid email", http.StatusBadRequest)
		return
	}

	store := dbpkg.StoreInstance(c)
	if store == nil {
		RespondError(c, "store not configured in context", http.StatusInternalServerError)
		return
	}

	var existing []models.User
	if err := store.GetDocuments(c.Request.Context(), models.UserCollection, map[string]any{"email": req.Email}, 1, &existing); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(existing) > 0 {
		RespondError(c, "Email already exists", http.StatusConflict)
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: passwordHash(req.Password),
		IsGuest:      false,
	}
	user.ApplyDefaults()

	userID, err := store.CreateDocument(c.Request.Context(), models.UserCollection, user)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"user_id": userID, "email": req.Email})
}

// POST /auth/login
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		RespondError(c, "email and password are required", http.StatusBadRequest)
		return
	}

	store := dbpkg.StoreInstance(c)
	if store == nil {
		RespondError(c, "store not configured in context", http.StatusInternalServerError)
		return
	}

	var users []models.User
	if err := store.GetDocuments(c.Request.Context(), models.UserCollection, map[string]any{"email": req.Email}, 1, &users); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(users) == 0 {
		RespondError(c, "User not found", http.StatusNotFound)
		return
	}

	user := users[0]
	if user.PasswordHash != passwordHash(req.Password) {
		RespondError(c, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	RespondSuccess(c, gin.H{"user_id": user.ID.Hex(), "email": user.Email})
}

// POST /auth/guest
// Sempre cria um novo usuário guest; não há verificação de unicidade.
func GuestLogin(c *gin.Context) {
	var req GuestLoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if !tools.ValidateEmail(req.Email) {
		RespondError(c, "invalid email", http.StatusBadRequest)
		return
	}

	store := dbpkg.StoreInstance(c)
	if store == nil {
		RespondError(c, "store not configured in context", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: "guest",
		IsGuest:      true,
	}
	user.ApplyDefaults()

	userID, err := store.CreateDocument(c.Request.Context(), models.UserCollection, user)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"user_id": userID, "email": req.Email, "guest": true})
}
