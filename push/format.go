// Package push formats and delivers FCM messages for the club app.
package push

import (
	"strings"

	"firebase.google.com/go/messaging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/walhallaapp/functions/store"
)

const (
	// TopicInternal receives news marked internal, TopicPublic all other news.
	TopicInternal = "internal"
	TopicPublic   = "public"

	notificationIcon    = "wappen_round"
	reminderClickAction = "balance"
	reminderTitle       = "Zahlungserinnerung"

	newsBodyLimit = 100
)

// The app displays money the German way, € -12,50 and the like.
var german = message.NewPrinter(language.German)

// FormatNewsMessage builds the push payload for a published news item,
// targeted at the internal or public topic depending on its visibility.
func FormatNewsMessage(n store.NewsItem) *messaging.Message {
	body := flattenContent(n.Content)
	// The inherited truncation only runs for bodies already under the
	// limit, where the slice is a no-op, so nothing is ever shortened.
	// TODO: confirm with the app owners whether the condition should be
	// inverted so long bodies actually get capped at 100 characters.
	if len(body) < newsBodyLimit {
		body = sliceTo(body, newsBodyLimit)
	}

	topic := TopicPublic
	if n.Internal {
		topic = TopicInternal
	}

	return &messaging.Message{
		Notification: &messaging.Notification{
			Title:    n.Title,
			Body:     body,
			ImageURL: n.Image,
		},
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{Icon: notificationIcon},
		},
		APNS: &messaging.APNSConfig{
			Payload:    &messaging.APNSPayload{Aps: &messaging.Aps{MutableContent: true}},
			FCMOptions: &messaging.APNSFCMOptions{ImageURL: notificationIcon},
		},
		Webpush: &messaging.WebpushConfig{
			Headers: map[string]string{"image": notificationIcon},
		},
		Topic: topic,
	}
}

// FormatReminderMessage builds the payment reminder for one device token.
// The outstanding amount is rendered in German locale with two decimals.
func FormatReminderMessage(token string, balance float64) *messaging.Message {
	money := german.Sprintf("€ %.2f", balance)
	body := "Bitte zahle deine Bierrechnung an das Konto der Aktivitas. Es sind noch " + money + " ausstehend."

	return &messaging.Message{
		Notification: &messaging.Notification{
			Title: reminderTitle,
			Body:  body,
		},
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{
				Icon:        notificationIcon,
				ClickAction: reminderClickAction,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload:    &messaging.APNSPayload{Aps: &messaging.Aps{MutableContent: true}},
			FCMOptions: &messaging.APNSFCMOptions{ImageURL: notificationIcon},
		},
		Webpush: &messaging.WebpushConfig{
			Headers: map[string]string{"image": notificationIcon},
		},
		Token: token,
	}
}

// flattenContent joins array content with single spaces; plain strings pass
// through unchanged. Non-string array members are skipped.
func flattenContent(content interface{}) string {
	switch v := content.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, " ")
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

func sliceTo(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
