package mailer

import (
	"fmt"
	"log"
	"os"

	"gobhraman/src/lib"
	"gobhraman/src/models"
	"gobhraman/src/pricing"
	"gobhraman/src/types"

	"github.com/wneessen/go-mail"
)

// SendBookingReceived mails the traveler after a booking submission.
// A send failure is logged, never fatal for the booking itself.
func SendBookingReceived(b *models.Booking) error {
	advance := pricing.DEFAULT_ADVANCE * int64(b.NumTravelers)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking request for %s has been received.\n\nTravelers: %d\nTotal: %s\nAdvance to pay: %s\n\nWe'll confirm once the advance payment is verified.\n\n— GoBhraman",
		b.FullName, b.TripName, b.NumTravelers,
		pricing.FormatINR(b.Amount), pricing.FormatINR(advance),
	)
	return send(b.Email, fmt.Sprintf("Booking received — %s", b.TripName), body)
}

// SendBookingStatusChanged mails the traveler after an admin transition.
func SendBookingStatusChanged(b *models.Booking) error {
	var subject, body string
	switch b.Status {
	case types.BOOKING_CONFIRMED:
		subject = fmt.Sprintf("Booking confirmed — %s", b.TripName)
		body = fmt.Sprintf("Hi %s,\n\nYour booking for %s is confirmed. See you at the pickup point!\n\n— GoBhraman", b.FullName, b.TripName)
	case types.BOOKING_CANCELLED:
		subject = fmt.Sprintf("Booking cancelled — %s", b.TripName)
		body = fmt.Sprintf("Hi %s,\n\nYour booking for %s has been cancelled. Refunds follow the trip's cancellation policy.\n\n— GoBhraman", b.FullName, b.TripName)
	default:
		return fmt.Errorf("no notification for status %q", b.Status)
	}
	return send(b.Email, subject, body)
}

func send(to, subject, body string) error {
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "bhramanbyua@gmail.com"
	}
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return err
	}
	if err := m.To(to); err != nil {
		return err
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextPlain, body)
	c, err := lib.GetSMTPClient()
	if err != nil {
		return err
	}
	if err := c.DialAndSend(m); err != nil {
		log.Printf("Could not send mail to %s: %s\n", to, err.Error())
		return err
	}
	return nil
}
