// server/internal/mailer/mailer.go
package mailer

import (
	"fmt"

	"zk-salon-api-server/config"
	"zk-salon-api-server/internal/models"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends the admin notification for new bookings over SMTP. Delivery is
// best-effort; nothing in the booking flow waits on it.
type Mailer struct {
	cfg config.EmailConfig
}

func New(cfg config.EmailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled reports whether SMTP credentials are configured.
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != "" && m.cfg.User != "" && m.cfg.From != ""
}

// NotifyBooking dispatches the new-booking email on a background goroutine.
// Failures are logged and never surfaced to the booking request.
func (m *Mailer) NotifyBooking(b models.Booking) {
	if m == nil || !m.Enabled() {
		return
	}
	go func() {
		if err := m.sendBookingNotification(b); err != nil {
			zap.S().Errorf("Failed to send admin notification email: %v", err)
			return
		}
		zap.S().Info("Admin notification email sent successfully")
	}()
}

func (m *Mailer) sendBookingNotification(b models.Booking) error {
	html := fmt.Sprintf(`
	<h3>New Appointment Booking</h3>
	<p><strong>Customer:</strong> %s</p>
	<p><strong>Mobile:</strong> %s</p>
	<p><strong>Service:</strong> %s</p>
	<p><strong>Date:</strong> %s</p>
	<p><strong>Time:</strong> %s</p>
	<p><strong>Barber:</strong> %s</p>
	<hr>
	<p>Sent from ZK Salon API</p>
	`, b.CustomerName, b.Mobile, b.ServiceName, b.Date, b.Time, b.BarberName)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.From)
	msg.SetHeader("Subject", "🆕 New Booking - ZK Salon")
	msg.SetBody("text/html", html)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	return dialer.DialAndSend(msg)
}
