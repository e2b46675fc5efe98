package libs

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"

	"bar-bike/config"
	"bar-bike/models"
)

// OrderMailer emails the shop a copy of every WhatsApp order.
type OrderMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewOrderMailer(cfg config.SMTPConfig) (*OrderMailer, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &OrderMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   from,
		to:     cfg.NotifyTo,
	}, nil
}

func (m *OrderMailer) NotifyOrder(ctx context.Context, order models.WhatsAppOrder, cart models.Cart) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("BarBike order %s (%d items)", shortID(cart.ID), order.Count))
	msg.SetBody("text/html", OrderEmailBody(order, cart))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func OrderEmailBody(order models.WhatsAppOrder, cart models.Cart) string {
	var rows strings.Builder
	for _, item := range cart.Items {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%d</td><td>₪%s</td></tr>\n",
			html.EscapeString(item.Name), item.Quantity, formatAmount(item.Subtotal()))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html dir="rtl">
<body style="font-family: Arial, sans-serif;">
    <h2>הזמנה חדשה מהאתר</h2>
    <table border="1" cellpadding="6" style="border-collapse: collapse;">
        <tr><th>מוצר</th><th>כמות</th><th>סכום</th></tr>
%s    </table>
    <p><strong>סה"כ: ₪%s</strong></p>
    <p><a href="%s">פתח בוואטסאפ</a></p>
    <pre>%s</pre>
</body>
</html>`, rows.String(), formatAmount(order.Total), html.EscapeString(order.URL), html.EscapeString(order.Message))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
