package notification

import (
	"context"
	"fmt"
	"html"
	"strings"

	"nimtoz/config"
	"nimtoz/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// MailNotifier delivers notifications over SMTP.
type MailNotifier struct {
	dialer *gomail.Dialer
	from   string
	// opsEmail is the operations inbox for new booking requests.
	opsEmail string
}

// NewMailNotifier builds a notifier from the SMTP configuration.
func NewMailNotifier() *MailNotifier {
	cfg := config.AppConfig
	return &MailNotifier{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:     cfg.SMTPUser,
		opsEmail: cfg.BookingsEmail,
	}
}

func (n *MailNotifier) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send %q to %s: %w", subject, to, err)
	}
	return nil
}

// SendBookingRequested mails the operations inbox about a new booking request.
func (n *MailNotifier) SendBookingRequested(ctx context.Context, p BookingRequestedPayload) error {
	logger := utils.GetLogger()

	var b strings.Builder
	b.WriteString("<html><body><div style=\"font-family:Arial,sans-serif;padding:20px\">")
	b.WriteString("<h1>New Venue Booking Request</h1>")
	b.WriteString("<p>You have received a new booking request. Here are the details:</p>")
	b.WriteString("<table>")
	writeRow(&b, "Start Date:", p.StartDate)
	writeRow(&b, "End Date:", p.EndDate)
	writeRow(&b, "User Name:", p.UserName)
	writeRow(&b, "User Email:", p.UserEmail)
	writeRow(&b, "User Phone:", p.UserPhone)
	writeRow(&b, "Product Name:", p.ProductTitle)
	if len(p.EventTypes) > 0 {
		writeRow(&b, "Events:", strings.Join(p.EventTypes, ", "))
	}
	b.WriteString("</table>")
	writeLineItems(&b, p.LineItems)
	b.WriteString("<p>Please review and approve the booking at your earliest convenience.</p>")
	b.WriteString("<p>Thank you!</p></div></body></html>")

	if err := n.send(n.opsEmail, "New Venue Booking Request", b.String()); err != nil {
		return err
	}
	logger.Info("Sent booking request notification",
		zap.String("bookingID", p.BookingID),
		zap.String("to", n.opsEmail))
	return nil
}

// SendBookingDecided mails the customer the approve/reject outcome.
func (n *MailNotifier) SendBookingDecided(ctx context.Context, p BookingDecidedPayload) error {
	logger := utils.GetLogger()

	subject := "Booking Approved"
	heading := "Your Booking Has Been Approved!"
	status := "Approved"
	if !p.Approved {
		subject = "Booking Rejected"
		heading = "Your Booking Request Was Not Approved"
		status = "Rejected"
	}

	var b strings.Builder
	b.WriteString("<html><body><div style=\"font-family:Arial,sans-serif;padding:20px\">")
	fmt.Fprintf(&b, "<h1>%s</h1>", heading)
	b.WriteString("<p>Your booking for the event has been reviewed. Here are the details:</p>")
	fmt.Fprintf(&b, "<p><strong>Product Name:</strong> %s</p>", html.EscapeString(p.ProductTitle))
	fmt.Fprintf(&b, "<p><strong>Status:</strong> %s</p>", status)
	writeLineItems(&b, p.LineItems)
	fmt.Fprintf(&b, "<p><strong>Start Date:</strong> %s</p>", html.EscapeString(p.StartDate))
	fmt.Fprintf(&b, "<p><strong>End Date:</strong> %s</p>", html.EscapeString(p.EndDate))
	b.WriteString("<p>Thank you for choosing us!</p></div></body></html>")

	if err := n.send(p.UserEmail, subject, b.String()); err != nil {
		return err
	}
	logger.Info("Sent booking decision notification",
		zap.String("bookingID", p.BookingID),
		zap.Bool("approved", p.Approved),
		zap.String("to", p.UserEmail))
	return nil
}

// SendPasswordReset mails the user their single-use reset token.
func (n *MailNotifier) SendPasswordReset(ctx context.Context, p PasswordResetPayload) error {
	var b strings.Builder
	b.WriteString("<html><body><div style=\"font-family:Arial,sans-serif;padding:20px\">")
	b.WriteString("<h1>Password Reset</h1>")
	fmt.Fprintf(&b, "<p>Hi %s,</p>", html.EscapeString(p.FirstName))
	b.WriteString("<p>We received a request to reset your password. Use the token below within 15 minutes:</p>")
	fmt.Fprintf(&b, "<p><strong>%s</strong></p>", html.EscapeString(p.Token))
	b.WriteString("<p>If you did not request this, you can ignore this email.</p>")
	b.WriteString("</div></body></html>")

	return n.send(p.Email, "Password Reset", b.String())
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<tr><th align=\"left\">%s</th><td>%s</td></tr>",
		html.EscapeString(label), html.EscapeString(value))
}

// writeLineItems renders the booked offerings grouped by kind, matching the
// customer-facing breakdown of the approval email.
func writeLineItems(b *strings.Builder, items []LineItemSummary) {
	if len(items) == 0 {
		return
	}
	byKind := make(map[string][]LineItemSummary)
	var order []string
	for _, item := range items {
		if _, seen := byKind[item.Kind]; !seen {
			order = append(order, item.Kind)
		}
		byKind[item.Kind] = append(byKind[item.Kind], item)
	}
	for _, kind := range order {
		fmt.Fprintf(b, "<h3>%s:</h3>", html.EscapeString(kind))
		for _, item := range byKind[kind] {
			fmt.Fprintf(b, "<p>Title: %s, Price: %.0f</p>", html.EscapeString(item.Name), item.Price)
		}
	}
}
