package notify

import "fmt"

// ReservationDetails is what the confirmation email needs to render.
type ReservationDetails struct {
	Name           string
	Email          string
	Date           string
	Time           string
	Guests         int
	RestaurantName string
	Phone          string
	Address        string
}

// ReservationConfirmation builds the confirmation email for a booked table.
func ReservationConfirmation(d ReservationDetails) EmailMessage {
	subject := fmt.Sprintf("Your reservation at %s is confirmed", d.RestaurantName)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour table for %d on %s at %s is confirmed.\n\n%s\n%s\nQuestions? Call us at %s.\n\nSee you soon!",
		d.Name, d.Guests, d.Date, d.Time, d.RestaurantName, d.Address, d.Phone,
	)
	html := fmt.Sprintf(
		`<div style="font-family:sans-serif;max-width:560px">
<h2>Reservation confirmed</h2>
<p>Hi %s,</p>
<p>Your table for <strong>%d</strong> on <strong>%s</strong> at <strong>%s</strong> is confirmed.</p>
<p>%s<br>%s</p>
<p>Questions? Call us at %s.</p>
<p>See you soon!</p>
</div>`,
		d.Name, d.Guests, d.Date, d.Time, d.RestaurantName, d.Address, d.Phone,
	)
	return EmailMessage{
		To:      d.Email,
		ToName:  d.Name,
		Subject: subject,
		Body:    body,
		HTML:    html,
	}
}
