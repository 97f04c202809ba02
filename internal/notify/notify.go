// Package notify delivers citizen-facing notifications. No driver performs a
// real SMS dispatch: the console driver logs, the redis driver publishes to a
// pub/sub channel for an external consumer.
package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Notifier is the simulated delivery channel used by the ticket workflow.
type Notifier interface {
	Notify(mobile, message string) error
}

// ConsoleNotifier writes notifications to the process log.
type ConsoleNotifier struct{}

func (ConsoleNotifier) Notify(mobile, message string) error {
	log.Printf("[sms] to %s: %s", mobile, message)
	return nil
}

// Notification is the payload published by the redis driver.
type Notification struct {
	Mobile  string    `json:"mobile"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// RedisNotifier publishes notifications on a pub/sub channel so that a
// separate worker can pick them up.
type RedisNotifier struct {
	Client  *redis.Client
	Channel string
}

func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{Client: client, Channel: channel}
}

func (n *RedisNotifier) Notify(mobile, message string) error {
	payload, err := json.Marshal(Notification{
		Mobile:  mobile,
		Message: message,
		SentAt:  time.Now(),
	})
	if err != nil {
		return err
	}
	return n.Client.Publish(context.Background(), n.Channel, payload).Err()
}
