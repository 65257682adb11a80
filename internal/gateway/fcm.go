// README: Driver notification gateway over Firebase Cloud Messaging.
package gateway

import (
	"context"
	"time"

	"firebase.google.com/go/v4/messaging"
)

const notifyBackoff = 500 * time.Millisecond

type FCMNotifier struct {
	client   *messaging.Client
	attempts int
}

func NewFCMNotifier(client *messaging.Client, attempts int) *FCMNotifier {
	return &FCMNotifier{client: client, attempts: attempts}
}

// Notify pushes a booking message to the driver's device.
func (n *FCMNotifier) Notify(ctx context.Context, deviceToken, text string) error {
	msg := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: "New booking",
			Body:  text,
		},
	}
	return retry(ctx, n.attempts, notifyBackoff, func() error {
		_, err := n.client.Send(ctx, msg)
		return err
	})
}
