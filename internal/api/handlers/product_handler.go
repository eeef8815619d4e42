// server/internal/api/handlers/product_handler.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"zk-salon-api-server/internal/imagestore"
	"zk-salon-api-server/internal/models"
	"zk-salon-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

type ProductHandler struct {
	Store  *store.Store
	Images imagestore.Store
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	doc, err := h.Store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, doc.Products)
}

// GetActiveProducts returns only the products visible on the public site.
func (h *ProductHandler) GetActiveProducts(c *gin.Context) {
	doc, err := h.Store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	active := []models.Product{}
	for _, p := range doc.Products {
		if p.IsActive {
			active = append(active, p)
		}
	}
	c.JSON(http.StatusOK, active)
}

// CreateProduct handles the multipart form: name, description, price,
// isActive plus the mandatory image file.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")
	priceStr := c.PostForm("price")
	if name == "" || description == "" || priceStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, description and price are required"})
		return
	}

	price, err := cast.ToFloat64E(priceStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a number"})
		return
	}

	isActive := true
	if v, ok := c.GetPostForm("isActive"); ok {
		isActive, err = cast.ToBoolE(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "isActive must be a boolean"})
			return
		}
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	productID := uuid.New().String()
	img, err := imagestore.SaveUpload(c.Request.Context(), h.Images, fileHeader, productID)
	if err != nil {
		if errors.Is(err, imagestore.ErrInvalidImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	newProduct := models.Product{
		ID:          productID,
		Name:        name,
		Description: description,
		Price:       price,
		IsActive:    isActive,
		Image:       img,
		CreatedAt:   time.Now().Format("2006-01-02 15:04:05"),
	}

	err = h.Store.Update(func(doc *store.Document) error {
		doc.Products = append(doc.Products, newProduct)
		return nil
	})
	if err != nil {
		// The record never made it in; don't leave the fresh asset behind.
		if delErr := h.Images.Delete(img); delErr != nil {
			zap.S().Warnf("Failed to clean up image for unsaved product %s: %v", productID, delErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, newProduct)
}

// UpdateProduct patches the scalar fields and optionally replaces the image.
// The previous asset is deleted best-effort once the new one is in place.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	price := 0.0
	priceStr, hasPrice := c.GetPostForm("price")
	if hasPrice {
		var err error
		price, err = cast.ToFloat64E(priceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a number"})
			return
		}
	}
	isActive := false
	isActiveStr, hasIsActive := c.GetPostForm("isActive")
	if hasIsActive {
		var err error
		isActive, err = cast.ToBoolE(isActiveStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "isActive must be a boolean"})
			return
		}
	}
	name, hasName := c.GetPostForm("name")
	description, hasDescription := c.GetPostForm("description")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		fileHeader = nil
	}

	var updated models.Product
	err = h.Store.Update(func(doc *store.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID != productID {
				continue
			}
			p := &doc.Products[i]

			if hasName {
				p.Name = name
			}
			if hasDescription {
				p.Description = description
			}
			if hasPrice {
				p.Price = price
			}
			if hasIsActive {
				p.IsActive = isActive
			}

			if fileHeader != nil {
				img, err := imagestore.SaveUpload(c.Request.Context(), h.Images, fileHeader, productID)
				if err != nil {
					return err
				}
				if !p.Image.IsZero() {
					if delErr := h.Images.Delete(p.Image); delErr != nil {
						zap.S().Warnf("Failed to delete replaced image for product %s: %v", productID, delErr)
					}
				}
				p.Image = img
			}

			updated = *p
			return nil
		}
		return store.ErrNotFound
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, imagestore.ErrInvalidImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": updated})
}

// DeleteProduct removes the record and cleans up its image asset best-effort.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	err := h.Store.Update(func(doc *store.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID != productID {
				continue
			}
			if img := doc.Products[i].Image; !img.IsZero() {
				if delErr := h.Images.Delete(img); delErr != nil {
					zap.S().Warnf("Failed to delete image for product %s: %v", productID, delErr)
				}
			}
			doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
			return nil
		}
		return store.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
