package utils

import (
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/littlelemon/littlelemon-api/models"
)

// NotifyOrder posts an order event to the webhook configured through
// ORDER_WEBHOOK_URL. Delivery is best-effort and synchronous: failures are
// logged and never affect the request that triggered them.
func NotifyOrder(order *models.Order, event string) {
	webhookURL := os.Getenv("ORDER_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}

	payload := map[string]any{
		"event":          event,
		"orderId":        order.ID,
		"userId":         order.UserID,
		"deliveryCrewId": order.DeliveryCrewID,
		"status":         order.Status,
		"total":          order.Total,
	}

	resp, err := resty.New().
		SetTimeout(10 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(webhookURL)
	if err != nil {
		log.Printf("Order webhook error for order %d: %v", order.ID, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Order webhook for order %d returned status %d", order.ID, resp.StatusCode())
	}
}
