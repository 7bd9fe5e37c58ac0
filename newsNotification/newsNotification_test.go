package newsNotification

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/messaging"

	"github.com/walhallaapp/functions/push"
	"github.com/walhallaapp/functions/store"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

var _ push.Sender = (*fakeSender)(nil)

func (f *fakeSender) Send(_ context.Context, msg *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return "msg-id", nil
}

func TestOnCreateDraftStaysSilent(t *testing.T) {
	fake := &fakeSender{}
	h := NewHandler(fake)

	if err := h.OnCreate(context.Background(), store.NewsItem{Title: "t", Draft: true}); err != nil {
		t.Fatalf("OnCreate: %v", err)
	}
	if len(fake.sent) != 0 {
		t.Fatalf("draft must not send, got %d sends", len(fake.sent))
	}
}

func TestOnCreatePublishedSends(t *testing.T) {
	fake := &fakeSender{}
	h := NewHandler(fake)

	if err := h.OnCreate(context.Background(), store.NewsItem{Title: "t", Content: "c"}); err != nil {
		t.Fatalf("OnCreate: %v", err)
	}
	if len(fake.sent) != 1 {
		t.Fatalf("want exactly one send, got %d", len(fake.sent))
	}
	if fake.sent[0].Topic != push.TopicPublic {
		t.Fatalf("topic: got %q", fake.sent[0].Topic)
	}
}

func TestOnUpdatePublishTransitionSendsOnce(t *testing.T) {
	fake := &fakeSender{}
	h := NewHandler(fake)
	ctx := context.Background()

	before := store.NewsItem{Title: "t", Content: "c", Draft: true, Internal: true}
	after := before
	after.Draft = false

	if err := h.OnUpdate(ctx, before, after); err != nil {
		t.Fatalf("OnUpdate: %v", err)
	}
	if len(fake.sent) != 1 {
		t.Fatalf("want exactly one send, got %d", len(fake.sent))
	}
	if fake.sent[0].Topic != push.TopicInternal {
		t.Fatalf("internal news must target the internal topic, got %q", fake.sent[0].Topic)
	}

	// A content-identical follow-up update stays silent.
	if err := h.OnUpdate(ctx, after, after); err != nil {
		t.Fatalf("OnUpdate: %v", err)
	}
	if len(fake.sent) != 1 {
		t.Fatalf("no-op update must not send again, got %d sends", len(fake.sent))
	}
}

func TestOnUpdateUnpublishStaysSilent(t *testing.T) {
	fake := &fakeSender{}
	h := NewHandler(fake)

	before := store.NewsItem{Title: "t", Draft: false}
	after := store.NewsItem{Title: "t", Draft: true}
	if err := h.OnUpdate(context.Background(), before, after); err != nil {
		t.Fatalf("OnUpdate: %v", err)
	}
	if len(fake.sent) != 0 {
		t.Fatalf("unpublish must not send, got %d sends", len(fake.sent))
	}
}

func TestSendFailureIsReturned(t *testing.T) {
	fake := &fakeSender{err: errors.New("gateway rejected")}
	h := NewHandler(fake)

	if err := h.OnCreate(context.Background(), store.NewsItem{Title: "t"}); err == nil {
		t.Fatal("want error when the gateway rejects")
	}
}
