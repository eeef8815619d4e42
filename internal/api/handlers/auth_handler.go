// server/internal/api/handlers/auth_handler.go
package handlers

import (
	"net/http"

	"zk-salon-api-server/internal/auth"
	"zk-salon-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Store *store.Store
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the credentials against the admin account first, then the
// employee collection. A matching legacy plain-text password is transparently
// rehashed in storage before the response is sent.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.Store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	// Check admin
	if doc.Admin.Email != "" && doc.Admin.Email == req.Email {
		ok, newHash := verifyPassword(req.Password, doc.Admin.Password)
		if ok {
			if newHash != "" {
				doc.Admin.Password = newHash
				if err := h.Store.Save(doc); err != nil {
					zap.S().Errorf("Failed to persist migrated admin password: %v", err)
				}
			}

			token, err := auth.GenerateJWT(doc.Admin.Email, "admin", "admin-id")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"user": gin.H{
					"id":    "admin-id",
					"email": doc.Admin.Email,
					"role":  "admin",
				},
				"token": token,
			})
			return
		}
	}

	// Check employees
	for i := range doc.Employees {
		emp := &doc.Employees[i]
		if emp.Email != req.Email {
			continue
		}
		ok, newHash := verifyPassword(req.Password, emp.Password)
		if !ok {
			continue
		}

		if newHash != "" {
			emp.Password = newHash
			if err := h.Store.Save(doc); err != nil {
				zap.S().Errorf("Failed to persist migrated employee password: %v", err)
			}
		}

		token, err := auth.GenerateJWT(emp.Email, emp.Role, emp.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		userRes := *emp
		userRes.Password = ""
		c.JSON(http.StatusOK, gin.H{"success": true, "user": userRes, "token": token})
		return
	}

	// Same response whether the email was unknown or the password wrong.
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
}

// verifyPassword checks the submitted password against the stored value.
// For a matching legacy plain-text credential it returns the replacement hash
// to persist; newHash is empty otherwise.
func verifyPassword(password, stored string) (ok bool, newHash string) {
	if auth.IsHashed(stored) {
		return auth.CheckPasswordHash(password, stored), ""
	}
	if stored == "" || stored != password {
		return false, ""
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		// Login still succeeds; migration is retried on the next login.
		zap.S().Errorf("Failed to rehash legacy password: %v", err)
		return true, ""
	}
	return true, hash
}
