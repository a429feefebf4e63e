package db

import (
	"github.com/gin-gonic/gin"
)

const storeKey = "store"

// Use este middleware no setup do gin
func SetStoreToContext(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(storeKey, store)
		c.Next()
	}
}

func StoreInstance(c *gin.Context) Store {
	v, ok := c.Get(storeKey)
	if !ok {
		return nil
	}
	store, _ := v.(Store)
	return store
}
