package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notekeeper/pkg/core"
)

type noteSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource exposes a repository watch channel as a lifecycle.Source.
// The output channel closes when events closes or the context passed to
// Start is cancelled.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &noteSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *noteSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
