package handlers_test

import (
	"net/http"
	"testing"

	"zk-salon-api-server/internal/auth"
	"zk-salon-api-server/internal/models"
	"zk-salon-api-server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeHashesPassword(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/employees", map[string]any{
		"name": "Zane", "email": "zane@salon.test", "password": "scissors",
		"mobile": "0123456789", "role": "employee",
	})
	requireStatus(t, w, http.StatusCreated)

	created := decode[models.Employee](t, w)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive, "isActive defaults to true")
	assert.True(t, auth.IsHashed(created.Password))

	stored := env.doc(t).Employees[0]
	assert.True(t, auth.CheckPasswordHash("scissors", stored.Password))
}

func TestCreateEmployeeWithoutPassword(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/employees", map[string]any{
		"name": "Maya", "email": "maya@salon.test", "mobile": "0123", "role": "manager", "isActive": false,
	})
	requireStatus(t, w, http.StatusCreated)

	created := decode[models.Employee](t, w)
	assert.Empty(t, created.Password)
	assert.False(t, created.IsActive)
}

func TestUpdateEmployeePasswordRules(t *testing.T) {
	env := newTestEnv(t)
	hash, err := auth.HashPassword("original")
	require.NoError(t, err)
	env.seed(t, &store.Document{Employees: []models.Employee{
		{ID: "emp-1", Name: "Zane", Email: "zane@salon.test", Password: hash, Role: "employee", IsActive: true},
	}})

	// Empty password in the patch leaves the stored hash untouched.
	w := env.doJSON(t, http.MethodPut, "/api/employees/emp-1", map[string]any{"name": "Zane Z.", "password": ""})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, hash, env.doc(t).Employees[0].Password)
	assert.Equal(t, "Zane Z.", env.doc(t).Employees[0].Name)

	// A non-empty password is rehashed.
	w = env.doJSON(t, http.MethodPut, "/api/employees/emp-1", map[string]any{"password": "newpw"})
	requireStatus(t, w, http.StatusOK)
	stored := env.doc(t).Employees[0].Password
	assert.NotEqual(t, hash, stored)
	assert.True(t, auth.CheckPasswordHash("newpw", stored))
}

func TestUpdateEmployeeNeverChangesID(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, &store.Document{Employees: []models.Employee{
		{ID: "emp-1", Name: "Zane", Email: "zane@salon.test", Role: "employee", IsActive: true},
	}})

	// An id in the payload is simply ignored.
	w := env.doJSON(t, http.MethodPut, "/api/employees/emp-1", map[string]any{"id": "spoofed", "name": "Z"})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "emp-1", env.doc(t).Employees[0].ID)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	env := newTestEnv(t)
	w := env.doJSON(t, http.MethodPut, "/api/employees/missing", map[string]any{"name": "X"})
	requireStatus(t, w, http.StatusNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, &store.Document{Employees: []models.Employee{
		{ID: "emp-1", Name: "Zane", Role: "employee", IsActive: true},
		{ID: "emp-2", Name: "Maya", Role: "employee", IsActive: true},
	}})

	requireStatus(t, env.doJSON(t, http.MethodDelete, "/api/employees/emp-1", nil), http.StatusOK)
	require.Len(t, env.doc(t).Employees, 1)
	assert.Equal(t, "emp-2", env.doc(t).Employees[0].ID)

	requireStatus(t, env.doJSON(t, http.MethodDelete, "/api/employees/emp-1", nil), http.StatusNotFound)
}

func TestGetBarbers(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, &store.Document{Employees: []models.Employee{
		{ID: "emp-1", Name: "zane", Role: "employee", IsActive: true},
		{ID: "emp-2", Name: "Maya", Role: "employee", IsActive: false},
		{ID: "emp-3", Name: "Omar", Role: "manager", IsActive: true},
	}})

	w := env.doJSON(t, http.MethodGet, "/api/barbers", nil)
	requireStatus(t, w, http.StatusOK)

	barbers := decode[[]models.Barber](t, w)
	require.Len(t, barbers, 1)
	assert.Equal(t, models.Barber{ID: "emp-1", Name: "zane", Initials: "Z"}, barbers[0])
}

func TestGetBarbersEmpty(t *testing.T) {
	env := newTestEnv(t)
	w := env.doJSON(t, http.MethodGet, "/api/barbers", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "[]", w.Body.String())
}
