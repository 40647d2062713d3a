package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"push-delivery-engine/internal/core/domain"
)

const messagePreviewLen = 120

var orderStatusText = map[string]struct{ title, body string }{
	"confirmed":        {"Order confirmed", "The pharmacy has confirmed your order."},
	"preparing":        {"Preparing your order", "The pharmacy is preparing your items."},
	"ready":            {"Order ready", "Your order is packed and waiting for a rider."},
	"out_for_delivery": {"On the way", "A rider is bringing your order to you."},
	"delivered":        {"Order delivered", "Your order has been delivered. Get well soon!"},
	"cancelled":        {"Order cancelled", "Your order was cancelled."},
}

// DefaultComposer renders plain notification text for each event kind.
type DefaultComposer struct {
	AppURL string
	Icon   string
}

// NewDefaultComposer creates a composer linking into appURL.
func NewDefaultComposer(appURL, icon string) *DefaultComposer {
	return &DefaultComposer{AppURL: strings.TrimRight(appURL, "/"), Icon: icon}
}

func (c *DefaultComposer) OrderStatus(order domain.OrderScope, status string, image *string) domain.PushPayload {
	text, ok := orderStatusText[status]
	if !ok {
		text.title = "Order update"
		text.body = fmt.Sprintf("Your order status is now %s.", strings.ReplaceAll(status, "_", " "))
	}
	p := c.payload(text.title, text.body, "/orders/"+order.OrderID)
	if image != nil {
		p.Image = *image
	}
	return p
}

func (c *DefaultComposer) NewOrder(order domain.OrderScope) domain.PushPayload {
	body := "A new order is waiting for confirmation."
	if order.FirstItemName != "" {
		body = fmt.Sprintf("%s and more. Tap to review.", order.FirstItemName)
	}
	p := c.payload("New order #"+order.OrderID, body, "/pharmacy/orders/"+order.OrderID)
	p.Actions = []domain.PushAction{{Action: "open", Title: "Review order"}}
	return p
}

func (c *DefaultComposer) RiderDispatch(order domain.OrderScope) domain.PushPayload {
	body := "A delivery has been assigned to you."
	if order.Address != "" {
		body = "Deliver to " + order.Address
	}
	p := c.payload("New delivery #"+order.OrderID, body, "/rider/orders/"+order.OrderID)
	p.Actions = []domain.PushAction{{Action: "open", Title: "View route"}}
	return p
}

func (c *DefaultComposer) PharmacyMessage(order domain.OrderScope, content string) domain.PushPayload {
	return c.payload("Customer message on #"+order.OrderID, preview(content), "/pharmacy/orders/"+order.OrderID+"/chat")
}

func (c *DefaultComposer) CustomerMessage(order domain.OrderScope, content string) domain.PushPayload {
	return c.payload("Message from the pharmacy", preview(content), "/orders/"+order.OrderID+"/chat")
}

func (c *DefaultComposer) payload(title, body, path string) domain.PushPayload {
	return domain.PushPayload{
		Title: title,
		Body:  body,
		URL:   c.AppURL + path,
		Icon:  c.Icon,
	}
}

// preview trims content to messagePreviewLen runes.
func preview(content string) string {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) <= messagePreviewLen {
		return content
	}
	r := []rune(content)
	return string(r[:messagePreviewLen-1]) + "…"
}
