// server/internal/api/handlers/booking_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"zk-salon-api-server/internal/mailer"
	"zk-salon-api-server/internal/models"
	"zk-salon-api-server/internal/socket"
	"zk-salon-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	Store  *store.Store
	Mailer *mailer.Mailer
	Hub    *socket.Hub
}

// --- Request body structs ---

type CreateBookingRequest struct {
	CustomerName string  `json:"customerName" binding:"required"`
	Mobile       string  `json:"mobile" binding:"required"`
	ServiceID    string  `json:"serviceId" binding:"required"`
	ServiceName  string  `json:"serviceName" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	Time         string  `json:"time" binding:"required"`
	BarberID     string  `json:"barberId" binding:"required"`
	BarberName   string  `json:"barberName" binding:"required"`
	Price        float64 `json:"price"`
}

// BookingPatch carries the optional fields of a partial update; only fields
// present in the request body overwrite the stored record. The id is never
// patchable.
type BookingPatch struct {
	CustomerName *string  `json:"customerName"`
	Mobile       *string  `json:"mobile"`
	ServiceID    *string  `json:"serviceId"`
	ServiceName  *string  `json:"serviceName"`
	Date         *string  `json:"date"`
	Time         *string  `json:"time"`
	BarberID     *string  `json:"barberId"`
	BarberName   *string  `json:"barberName"`
	Status       *string  `json:"status"`
	Price        *float64 `json:"price"`
}

// --- Handlers ---

func (h *BookingHandler) GetBookings(c *gin.Context) {
	doc, err := h.Store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, doc.Bookings)
}

// CreateBooking appends a new appointment and notifies the admin channels
// (email + websocket) without blocking the response.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newBooking := models.Booking{
		ID:           uuid.New().String(),
		CustomerName: req.CustomerName,
		Mobile:       req.Mobile,
		ServiceID:    req.ServiceID,
		ServiceName:  req.ServiceName,
		Date:         req.Date,
		Time:         req.Time,
		BarberID:     req.BarberID,
		BarberName:   req.BarberName,
		Status:       "upcoming",
		Price:        req.Price,
	}

	err := h.Store.Update(func(doc *store.Document) error {
		doc.Bookings = append(doc.Bookings, newBooking)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	h.Mailer.NotifyBooking(newBooking)
	if h.Hub != nil {
		if payload, err := json.Marshal(gin.H{"event": "booking.created", "booking": newBooking}); err == nil {
			h.Hub.Broadcast(payload)
		}
	}

	c.JSON(http.StatusCreated, newBooking)
}

// UpdateBooking applies a partial patch to an existing booking.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	bookingID := c.Param("id")

	var patch BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Store.Update(func(doc *store.Document) error {
		for i := range doc.Bookings {
			if doc.Bookings[i].ID != bookingID {
				continue
			}
			applyBookingPatch(&doc.Bookings[i], patch)
			return nil
		}
		return store.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func applyBookingPatch(b *models.Booking, p BookingPatch) {
	if p.CustomerName != nil {
		b.CustomerName = *p.CustomerName
	}
	if p.Mobile != nil {
		b.Mobile = *p.Mobile
	}
	if p.ServiceID != nil {
		b.ServiceID = *p.ServiceID
	}
	if p.ServiceName != nil {
		b.ServiceName = *p.ServiceName
	}
	if p.Date != nil {
		b.Date = *p.Date
	}
	if p.Time != nil {
		b.Time = *p.Time
	}
	if p.BarberID != nil {
		b.BarberID = *p.BarberID
	}
	if p.BarberName != nil {
		b.BarberName = *p.BarberName
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
}
