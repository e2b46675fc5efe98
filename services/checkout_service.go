package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"bar-bike/logx"
	"bar-bike/models"
)

// OrderNotifier is told about every checkout, e.g. by mail to the shop.
type OrderNotifier interface {
	NotifyOrder(ctx context.Context, order models.WhatsAppOrder, cart models.Cart) error
}

type CheckoutService struct {
	phone    string
	notifier OrderNotifier
	printer  *message.Printer
}

// NewCheckoutService builds the WhatsApp handoff. notifier may be nil.
func NewCheckoutService(phone string, notifier OrderNotifier) *CheckoutService {
	return &CheckoutService{
		phone:    phone,
		notifier: notifier,
		printer:  message.NewPrinter(language.English),
	}
}

// Checkout renders the cart as a WhatsApp order message addressed to the shop.
func (s *CheckoutService) Checkout(ctx context.Context, cart models.Cart) (*models.WhatsAppOrder, error) {
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	msg := s.BuildMessage(cart)
	order := &models.WhatsAppOrder{
		Phone:   s.phone,
		Message: msg,
		URL:     WhatsAppURL(s.phone, msg),
		Total:   cart.Total(),
		Count:   cart.Count(),
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyOrder(ctx, *order, cart); err != nil {
			logx.Warn().Err(err).Str("cart_id", cart.ID).Msg("order notification failed")
		}
	}
	return order, nil
}

func (s *CheckoutService) BuildMessage(cart models.Cart) string {
	var b strings.Builder
	b.WriteString("היי, אשמח לבצע הזמנה מאתר BarBike:\n\n")
	for _, item := range cart.Items {
		fmt.Fprintf(&b, "▫️ *%s* (x%d) - ₪%s\n", item.Name, item.Quantity, s.FormatAmount(item.Subtotal()))
	}
	fmt.Fprintf(&b, "\n*סה\"כ לתשלום: ₪%s*\n\n", s.FormatAmount(cart.Total()))
	b.WriteString("אשמח לקבל פרטים לתשלום ומשלוח.")
	return b.String()
}

// FormatAmount renders an amount with thousands separators and at most three
// fraction digits, e.g. 12,345 or 99.9.
func (s *CheckoutService) FormatAmount(amount float64) string {
	return s.printer.Sprint(number.Decimal(amount))
}

func WhatsAppURL(phone, text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, escaped)
}
