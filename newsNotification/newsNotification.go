// Package newsNotification pushes published news items to their topic.
package newsNotification

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/walhallaapp/functions/push"
	"github.com/walhallaapp/functions/store"
)

// Handler reacts to news writes. Only the transition into the published
// state fires a send; everything else stays silent.
type Handler struct {
	sender push.Sender
}

// NewHandler constructs the handler over the given sender.
func NewHandler(sender push.Sender) *Handler {
	return &Handler{sender: sender}
}

// OnCreate fires for news created directly as published.
func (h *Handler) OnCreate(ctx context.Context, item store.NewsItem) error {
	if item.Draft {
		return nil
	}
	return h.send(ctx, item)
}

// OnUpdate fires when a draft transitions to published.
func (h *Handler) OnUpdate(ctx context.Context, before, after store.NewsItem) error {
	if before.Draft && !after.Draft {
		return h.send(ctx, after)
	}
	return nil
}

func (h *Handler) send(ctx context.Context, item store.NewsItem) error {
	id, err := h.sender.Send(ctx, push.FormatNewsMessage(item))
	if err != nil {
		log.Errorf("error sending news message: %s", err)
		return err
	}
	log.Infof("successfully sent message: %s", id)
	return nil
}
