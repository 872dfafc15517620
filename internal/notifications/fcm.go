// Package notifications delivers best-effort account lifecycle notices
// over FCM topics. Callers treat failures as log-only.
package notifications

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

type FCM struct {
	client *messaging.Client
	topic  string
}

func NewFCM(client *messaging.Client, topic string) *FCM {
	return &FCM{client: client, topic: topic}
}

func (n *FCM) Welcome(ctx context.Context, uid, email string) error {
	return n.send(ctx, "welcome", uid, email)
}

func (n *FCM) Farewell(ctx context.Context, uid, email string) error {
	return n.send(ctx, "farewell", uid, email)
}

func (n *FCM) send(ctx context.Context, kind, uid, email string) error {
	if n == nil || n.client == nil {
		return nil
	}
	_, err := n.client.Send(ctx, &messaging.Message{
		Topic: n.topic,
		Data: map[string]string{
			"type":  kind,
			"uid":   uid,
			"email": email,
		},
	})
	if err != nil {
		return fmt.Errorf("send %s notice for %s: %w", kind, uid, err)
	}
	return nil
}
