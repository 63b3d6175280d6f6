package mailer

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"

	"storefront-api/models"
)

// EmailService sends transactional mail over SMTP. When the SMTP env vars
// are missing the dialer stays nil and every send is logged instead, so the
// API keeps working in development.
type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() *EmailService {
	host := os.Getenv("SMTP_HOST")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}

	if host == "" || user == "" || pass == "" {
		log.Println("SMTP is not configured; order confirmation emails will only be logged")
		return &EmailService{from: "noreply@storefront.local"}
	}

	return &EmailService{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

func (es *EmailService) SendOrderConfirmation(to string, order *models.Order) error {
	if es.dialer == nil {
		log.Printf("email disabled: would send confirmation for order %s to %s", order.OrderRef, to)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", es.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation - Order #%s", order.OrderRef))
	m.SetBody("text/html", confirmationBody(order))

	if err := es.dialer.DialAndSend(m); err != nil {
		return err
	}
	log.Printf("order confirmation email sent to %s", to)
	return nil
}

func confirmationBody(order *models.Order) string {
	var items strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&items, "<li>%s (Qty: %d) - $%.2f each</li>", item.ProductName, item.Quantity, item.Price)
	}

	address := fmt.Sprintf("%s, %s, %s, %s (%s)",
		order.Shipping.RecipientName, order.Shipping.Street,
		order.Shipping.District, order.Shipping.City, order.Shipping.Phone)

	return fmt.Sprintf(`
		<h2>Thank You for Your Order!</h2>
		<p>Dear Customer,</p>
		<p>Your order has been successfully placed. Below are the details:</p>
		<h3>Order Ref: %s</h3>
		<h4>Items:</h4>
		<ul>%s</ul>
		<p><strong>Total:</strong> $%.2f</p>
		<p><strong>Shipping Address:</strong> %s</p>
		<p><strong>Status:</strong> %s</p>
		<p>We will notify you when your order is shipped.</p>
		<p>Best regards,<br>Storefront Team</p>
	`, order.OrderRef, items.String(), order.Total, address, order.Status)
}
