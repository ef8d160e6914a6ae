package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"maps"
	"net"
	"os"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrNotConfigured means the RABBITMQ_* environment variables are not set.
// Event publishing is optional, so callers treat this as a skip, not a
// failure.
var ErrNotConfigured = errors.New("invalid or incomplete RabbitMQ environment variables")

func PublishMessage(ctx context.Context, exchange, routingKey, body string, headers amqp.Table) error {
	rHost := os.Getenv("RABBITMQ_HOST")
	rUser := os.Getenv("RABBITMQ_USER")
	rPass := os.Getenv("RABBITMQ_PASSWORD")
	if !(rHost != "" && rUser != "" && rPass != "") {
		return ErrNotConfigured
	}

	rUrl := fmt.Sprintf("amqp://%s:%s@%s", rUser, rPass, rHost)
	config := amqp.Config{
		Dial: func(network, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(ctx, network, addr)
		},
	}
	conn, err := amqp.DialConfig(rUrl, config)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ:\n>>> %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open a channel to RabbitMQ:\n>>> %w", err)
	}
	defer ch.Close()

	allHeaders := amqp.Table{}
	maps.Copy(allHeaders, headers)

	err = ch.PublishWithContext(ctx, exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         []byte(body),
		DeliveryMode: amqp.Persistent,
		Headers:      allHeaders,
	})
	if err != nil {
		return fmt.Errorf("failed to publish a message to RabbitMQ:\n>>> %w", err)
	}

	log.Printf("Published message to RabbitMQ: exchange=%s key=%s", exchange, routingKey)

	return nil
}

// PublishInventoryAdjusted emits an inventory.adjusted event after a
// successful stock change, so back-office consumers can react without polling
// the dashboard. Best effort only: an unconfigured broker is a logged skip
// and a broker failure is a logged error, neither fails the adjustment.
func PublishInventoryAdjusted(ctx context.Context, event any) {
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Could not marshal inventory.adjusted event: %v", err)
		return
	}

	err = PublishMessage(ctx, "inventory.events", "inventory.adjusted", string(body), amqp.Table{
		"X-Event-Type": "inventory.adjusted",
	})
	if errors.Is(err, ErrNotConfigured) {
		log.Println("RabbitMQ not configured, skipping inventory.adjusted event")
		return
	}
	if err != nil {
		log.Printf("Could not publish inventory.adjusted event: %v", err)
	}
}
