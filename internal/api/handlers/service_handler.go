// server/internal/api/handlers/service_handler.go
package handlers

import (
	"errors"
	"net/http"

	"zk-salon-api-server/internal/models"
	"zk-salon-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiceHandler struct {
	Store *store.Store
}

type CreateServiceRequest struct {
	Name     string   `json:"name" binding:"required"`
	Price    *float64 `json:"price" binding:"required"`
	Duration *int     `json:"duration" binding:"required"`
	IsActive *bool    `json:"isActive"`
}

type ServicePatch struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Duration *int     `json:"duration"`
	IsActive *bool    `json:"isActive"`
}

func (h *ServiceHandler) GetServices(c *gin.Context) {
	doc, err := h.Store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, doc.Services)
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newService := models.Service{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Price:    *req.Price,
		Duration: *req.Duration,
		IsActive: true,
	}
	if req.IsActive != nil {
		newService.IsActive = *req.IsActive
	}

	err := h.Store.Update(func(doc *store.Document) error {
		doc.Services = append(doc.Services, newService)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, newService)
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	serviceID := c.Param("id")

	var patch ServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Store.Update(func(doc *store.Document) error {
		for i := range doc.Services {
			if doc.Services[i].ID != serviceID {
				continue
			}
			s := &doc.Services[i]
			if patch.Name != nil {
				s.Name = *patch.Name
			}
			if patch.Price != nil {
				s.Price = *patch.Price
			}
			if patch.Duration != nil {
				s.Duration = *patch.Duration
			}
			if patch.IsActive != nil {
				s.IsActive = *patch.IsActive
			}
			return nil
		}
		return store.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
