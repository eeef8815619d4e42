// server/internal/api/handlers/diag_handler.go
package handlers

import (
	"net/http"
	"time"

	"zk-salon-api-server/internal/imagestore"
	"zk-salon-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type DiagHandler struct {
	Store  *store.Store
	Images imagestore.Store
}

// Diag is the health probe: storage mode, product count and server time.
func (h *DiagHandler) Diag(c *gin.Context) {
	doc, err := h.Store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            "online",
		"mode":              h.Images.Mode(),
		"db_products_count": len(doc.Products),
		"server_local_time": time.Now().Format("2006-01-02 15:04:05"),
	})
}
