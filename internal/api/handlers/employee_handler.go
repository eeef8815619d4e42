// server/internal/api/handlers/employee_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"zk-salon-api-server/internal/auth"
	"zk-salon-api-server/internal/models"
	"zk-salon-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	Store *store.Store
}

type CreateEmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
	Mobile   string `json:"mobile" binding:"required"`
	Role     string `json:"role" binding:"required"` // "employee" or "manager"
	IsActive *bool  `json:"isActive"`
}

// EmployeePatch carries optional fields of a partial update. A nil or empty
// password leaves the stored one untouched; a non-empty value is rehashed.
type EmployeePatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Mobile   *string `json:"mobile"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	doc, err := h.Store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, doc.Employees)
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newEmp := models.Employee{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Role:     req.Role,
		IsActive: true,
	}
	if req.IsActive != nil {
		newEmp.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		newEmp.Password = hash
	}

	err := h.Store.Update(func(doc *store.Document) error {
		doc.Employees = append(doc.Employees, newEmp)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	c.JSON(http.StatusCreated, newEmp)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	empID := c.Param("id")

	var patch EmployeePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Rehash outside the store lock; an empty password means "keep current".
	if patch.Password != nil && *patch.Password != "" {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		patch.Password = &hash
	} else {
		patch.Password = nil
	}

	var updated models.Employee
	err := h.Store.Update(func(doc *store.Document) error {
		for i := range doc.Employees {
			if doc.Employees[i].ID != empID {
				continue
			}
			applyEmployeePatch(&doc.Employees[i], patch)
			updated = doc.Employees[i]
			return nil
		}
		return store.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "employee": updated})
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	empID := c.Param("id")

	err := h.Store.Update(func(doc *store.Document) error {
		kept := doc.Employees[:0]
		for _, e := range doc.Employees {
			if e.ID != empID {
				kept = append(kept, e)
			}
		}
		if len(kept) == len(doc.Employees) {
			return store.ErrNotFound
		}
		doc.Employees = kept
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetBarbers is the public reduced view used by the booking page: active
// employees with the "employee" role, initials from the first letter of the
// name.
func (h *EmployeeHandler) GetBarbers(c *gin.Context) {
	doc, err := h.Store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	barbers := []models.Barber{}
	for _, e := range doc.Employees {
		if e.Role != "employee" || !e.IsActive {
			continue
		}
		initials := ""
		if runes := []rune(e.Name); len(runes) > 0 {
			initials = strings.ToUpper(string(runes[0]))
		}
		barbers = append(barbers, models.Barber{ID: e.ID, Name: e.Name, Initials: initials})
	}

	c.JSON(http.StatusOK, barbers)
}

func applyEmployeePatch(e *models.Employee, p EmployeePatch) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Password != nil {
		e.Password = *p.Password
	}
	if p.Mobile != nil {
		e.Mobile = *p.Mobile
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
}
