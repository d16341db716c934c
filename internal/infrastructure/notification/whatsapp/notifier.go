package whatsapp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"farm_hub/internal/config"
	domain "farm_hub/internal/domain/order"
	"farm_hub/pkg/logger"
)

// MessageSender is satisfied by twilio.Client.
type MessageSender interface {
	SendMessage(ctx context.Context, from, to, body string) (string, error)
}

// Notifier sends the admin a WhatsApp message for every placed order.
type Notifier struct {
	sender   MessageSender
	cfg      config.TwilioConfig
	shopName string
	log      logger.Logger
}

func NewNotifier(sender MessageSender, cfg config.TwilioConfig, shopName string, log logger.Logger) *Notifier {
	return &Notifier{
		sender:   sender,
		cfg:      cfg,
		shopName: shopName,
		log:      log,
	}
}

func (n *Notifier) Name() string { return "whatsapp" }

// NotifyOrderPlaced is a no-op (with a warning) while Twilio is not configured.
func (n *Notifier) NotifyOrderPlaced(ctx context.Context, o domain.Notification) error {
	log := n.log.WithContext(ctx).WithFields(logger.String("order_id", o.OrderID))

	if !n.cfg.Configured() {
		log.Warn("twilio credentials not configured, skipping whatsapp notification")
		return nil
	}

	sid, err := n.sender.SendMessage(ctx, n.cfg.FromNumber, n.cfg.AdminPhone, FormatMessage(n.shopName, o))
	if err != nil {
		return fmt.Errorf("send whatsapp message: %w", err)
	}

	log.Info("whatsapp notification sent", logger.String("message_sid", sid))
	return nil
}

// FormatMessage renders the admin message. WhatsApp understands *bold*.
func FormatMessage(shopName string, o domain.Notification) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🌾 *New Order - %s*\n\n", shopName)
	fmt.Fprintf(&b, "📦 Product: %s\n", o.ProductName)
	fmt.Fprintf(&b, "🏪 Supplier: %s\n", o.SupplierName)
	fmt.Fprintf(&b, "📊 Quantity: %s kg/derica\n", quantityText(o))
	fmt.Fprintf(&b, "💰 Total: ₦%s\n\n", o.Total)
	fmt.Fprintf(&b, "👤 Customer: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "📱 Phone: %s\n", o.Phone)
	fmt.Fprintf(&b, "📍 Address: %s\n\n", o.Address)
	fmt.Fprintf(&b, "⏰ Ordered at: %s", o.OrderedAt)

	return b.String()
}

func quantityText(o domain.Notification) string {
	if o.QuantityText != "" {
		return o.QuantityText
	}
	return strconv.Itoa(o.Quantity)
}
