package models

import (
	"ruva/tools"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCollection é o nome da collection no Mongo (nome do schema em minúsculas).
const UserCollection = "user"

/************************************************
/**** MARK: USER PLANS ****/
/************************************************/
const USER_PLAN_FREE = "free"
const USER_PLAN_WEEKLY = "weekly"
const USER_PLAN_MONTHLY = "monthly"
const USER_PLAN_YEARLY = "yearly"

// User representa um usuario no sistema.
// PasswordHash guarda "hash:<senha>" ou "guest" — NÃO é hashing de verdade,
// mantido assim por compatibilidade com os clientes existentes.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email        string             `bson:"email" json:"email" form:"email"`
	PasswordHash string             `bson:"password_hash" json:"password_hash"`
	IsGuest      bool               `bson:"is_guest" json:"is_guest"`
	Plan         string             `bson:"plan" json:"plan" form:"plan"`
}

// ApplyDefaults preenche o plano quando omitido.
func (user *User) ApplyDefaults() {
	if user.Plan == "" {
		user.Plan = USER_PLAN_FREE
	}
}

// MissingFields devolve o nome do campo inválido ("" quando ok).
func (user User) MissingFields() string {
	if user.Email == "" {
		return "email"
	} else if !tools.ValidateEmail(user.Email) {
		return "email"
	} else if user.PasswordHash == "" {
		return "password_hash"
	}
	switch user.Plan {
	case USER_PLAN_FREE, USER_PLAN_WEEKLY, USER_PLAN_MONTHLY, USER_PLAN_YEARLY:
		return ""
	}
	return "plan"
}
