package event

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// FlagPoller approximates a change trigger on a store that has no event
// stream: it reads a boolean flag on an interval and reports every observed
// transition with its before and after values.
type FlagPoller struct {
	interval time.Duration
	read     func(ctx context.Context) (bool, error)
	onChange func(ctx context.Context, before, after bool) error
}

// NewFlagPoller constructs a poller over the given read and change funcs.
func NewFlagPoller(
	interval time.Duration,
	read func(ctx context.Context) (bool, error),
	onChange func(ctx context.Context, before, after bool) error,
) *FlagPoller {
	return &FlagPoller{interval: interval, read: read, onChange: onChange}
}

// Run blocks until ctx is done. Read errors skip the tick, change handler
// errors are logged only.
func (p *FlagPoller) Run(ctx context.Context) {
	last, err := p.read(ctx)
	if err != nil {
		log.Errorf("initial flag read failed: %s", err)
		last = false
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			current, err := p.read(ctx)
			if err != nil {
				log.Errorf("flag read failed: %s", err)
				continue
			}
			if current != last {
				if err := p.onChange(ctx, last, current); err != nil {
					log.Errorf("flag handler failed: %s", err)
				}
			}
			last = current
		case <-ctx.Done():
			return
		}
	}
}
