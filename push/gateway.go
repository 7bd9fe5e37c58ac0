package push

import (
	"context"

	"firebase.google.com/go/messaging"
)

// Sender delivers one formatted message and reports the gateway message id.
type Sender interface {
	Send(ctx context.Context, msg *messaging.Message) (string, error)
}

// Gateway is the FCM-backed Sender.
type Gateway struct {
	mc *messaging.Client
}

// NewGateway wraps a firebase messaging client.
func NewGateway(mc *messaging.Client) *Gateway {
	return &Gateway{mc: mc}
}

func (g *Gateway) Send(ctx context.Context, msg *messaging.Message) (string, error) {
	return g.mc.Send(ctx, msg)
}
