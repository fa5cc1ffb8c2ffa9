package config

import (
	"fmt"
	"log"

	"github.com/rabbitmq/amqp091-go"
)

// ConnectRabbitMQ returns nil when RABBITMQ_URL is not set; report events are then only logged
func ConnectRabbitMQ(url string) (*amqp091.Connection, error) {
	if url == "" {
		log.Println("⚠️ RABBITMQ_URL not set, report events will only be logged")
		return nil, nil
	}
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	log.Println("✅ Connected to RabbitMQ")
	return conn, nil
}
