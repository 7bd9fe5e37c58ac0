// Command walhallad runs the club's event handlers against live firestore
// and realtime database state: it binds the dispatch table to collection
// listeners, polls the reminder flag and fires the monthly semester check.
package main

import (
	"context"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/walhallaapp/functions/app"
	"github.com/walhallaapp/functions/drinkCounter"
	"github.com/walhallaapp/functions/event"
	"github.com/walhallaapp/functions/fcmToken"
	"github.com/walhallaapp/functions/newsNotification"
	"github.com/walhallaapp/functions/push"
	"github.com/walhallaapp/functions/semesterUpdate"
	"github.com/walhallaapp/functions/sendReminder"
	"github.com/walhallaapp/functions/store"
)

const (
	sourceNews   = "News"
	sourcePerson = "Person"
	sourceDrink  = "Drink"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{log.FieldKeyMsg: "message"},
	})
	log.SetLevel(log.InfoLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := app.LoadConfig()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("initializing app: %s", err)
	}
	defer application.Close()

	semesters := store.NewSemesterStore(application.Firestore)
	persons := store.NewPersonStore(application.Firestore)
	tokens := store.NewTokenStore(application.Firestore)
	counters := store.NewCounterStore(application.Database)
	trigger := store.NewTriggerStore(application.Database)
	gateway := push.NewGateway(application.Messaging)

	news := newsNotification.NewHandler(gateway)
	directory := fcmToken.NewHandler(tokens)
	drinks := drinkCounter.NewHandler(counters)
	advancer := semesterUpdate.NewHandler(semesters)
	reminder := sendReminder.NewHandler(persons, tokens, trigger, gateway)

	registry := event.NewRegistry()

	registry.Register(event.DocumentEvent{Source: sourceNews, Kind: event.Created},
		func(ctx context.Context, doc event.Document) error {
			var item store.NewsItem
			if err := doc.After.DataTo(&item); err != nil {
				return err
			}
			return news.OnCreate(ctx, item)
		})

	registry.Register(event.DocumentEvent{Source: sourceNews, Kind: event.Updated},
		func(ctx context.Context, doc event.Document) error {
			var before, after store.NewsItem
			if doc.Before != nil {
				if err := doc.Before.DataTo(&before); err != nil {
					return err
				}
			}
			if err := doc.After.DataTo(&after); err != nil {
				return err
			}
			return news.OnUpdate(ctx, before, after)
		})

	personWrite := func(ctx context.Context, doc event.Document) error {
		var before, after *store.Person
		if doc.Before != nil {
			before = new(store.Person)
			if err := doc.Before.DataTo(before); err != nil {
				return err
			}
		}
		if doc.After != nil {
			after = new(store.Person)
			if err := doc.After.DataTo(after); err != nil {
				return err
			}
		}
		return directory.OnWrite(ctx, doc.ID, before, after)
	}
	registry.Register(event.DocumentEvent{Source: sourcePerson, Kind: event.Created}, personWrite)
	registry.Register(event.DocumentEvent{Source: sourcePerson, Kind: event.Updated}, personWrite)
	registry.Register(event.DocumentEvent{Source: sourcePerson, Kind: event.Deleted}, personWrite)

	registry.Register(event.DocumentEvent{Source: sourceDrink, Kind: event.Created},
		func(ctx context.Context, doc event.Document) error {
			var sale store.DrinkSale
			if err := doc.After.DataTo(&sale); err != nil {
				return err
			}
			return drinks.OnCreate(ctx, sale)
		})

	fs := application.Firestore
	go event.NewListener(registry, sourceNews, fs.Collection(sourceNews).Query).Listen(ctx)
	go event.NewListener(registry, sourcePerson, fs.Collection(sourcePerson).Query).Listen(ctx)
	go event.NewListener(registry, sourceDrink, fs.CollectionGroup(sourceDrink).Query).Listen(ctx)

	go event.NewMonthlySchedule(application.Location, advancer.Run).Run(ctx)

	poller := event.NewFlagPoller(cfg.ReminderPoll,
		func(ctx context.Context) (bool, error) {
			flag, err := trigger.Reminder(ctx)
			return flag.Send, err
		},
		func(ctx context.Context, before, after bool) error {
			return reminder.OnUpdate(ctx,
				store.ReminderFlag{Send: before},
				store.ReminderFlag{Send: after})
		})
	go poller.Run(ctx)

	log.Info("walhallad started")
	<-ctx.Done()
	log.Info("walhallad stopping")
}
