// Package app builds the process-wide context: every external client,
// constructed once at startup and handed to the handlers.
package app

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/db"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

// App bundles the firebase clients and the configured timezone.
type App struct {
	Firestore *firestore.Client
	Database  *db.Client
	Messaging *messaging.Client
	Location  *time.Location
}

// New initializes the firebase clients from the given config.
func New(ctx context.Context, cfg Config) (*App, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	firebaseApp, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	fs, err := firebaseApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing firestore client: %w", err)
	}

	rtdb, err := firebaseApp.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing database client: %w", err)
	}

	mc, err := firebaseApp.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing messaging client: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %s: %w", cfg.Timezone, err)
	}

	return &App{Firestore: fs, Database: rtdb, Messaging: mc, Location: loc}, nil
}

// Close releases the clients that hold connections.
func (a *App) Close() error {
	return a.Firestore.Close()
}
