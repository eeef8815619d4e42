package models

// Booking is an appointment made by a customer. ServiceName and BarberName are
// denormalized snapshots taken at booking time; they are not kept in sync with
// the service or employee collections.
type Booking struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customerName"`
	Mobile       string  `json:"mobile"`
	ServiceID    string  `json:"serviceId"`
	ServiceName  string  `json:"serviceName"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	BarberID     string  `json:"barberId"`
	BarberName   string  `json:"barberName"`
	Status       string  `json:"status"` // "upcoming", "completed", "cancelled"
	Price        float64 `json:"price"`
}
