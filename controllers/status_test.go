package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://mongo:27017")
	t.Setenv("DATABASE_NAME", "ruva")

	store := newFakeStore()
	r := setupRouter(store)

	// Popula uma collection para aparecer na listagem
	w := doRequest(t, r, http.MethodPost, "/auth/guest", map[string]string{"email": "g@b.com"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, w.Code)

	payload := decodeBody(t, w)
	assert.Equal(t, "✅ Running", payload["backend"])
	assert.Equal(t, "✅ Connected & Working", payload["database"])
	assert.Equal(t, "Connected", payload["connection_status"])
	assert.Equal(t, "✅ Set", payload["database_url"])
	assert.Equal(t, "✅ Set", payload["database_name"])
	assert.Contains(t, payload["collections"], "user")
}

// Falha do store vira string descritiva, nunca erro HTTP.
func TestTestDatabase_StoreDown(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	store := newFakeStore()
	store.failPing = true
	r := setupRouter(store)

	w := doRequest(t, r, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, w.Code)

	payload := decodeBody(t, w)
	assert.Contains(t, payload["database"], "❌ Error")
	assert.Equal(t, "Not Connected", payload["connection_status"])
	assert.Equal(t, "❌ Not Set", payload["database_url"])
	assert.Equal(t, "❌ Not Set", payload["database_name"])
}
