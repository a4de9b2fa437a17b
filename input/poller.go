package input

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cannon-defense/core"
)

// EventSource delivers terminal events, tcell.Screen satisfies it.
// PollEvent returns nil once the source is finalized.
type EventSource interface {
	PollEvent() tcell.Event
}

// eventBufferSize bounds keys queued between frames
const eventBufferSize = 100

// Poller pumps terminal events on a background goroutine so the frame loop never blocks on input
type Poller struct {
	events chan tcell.Event
	table  *KeyTable
}

// NewPoller starts pumping events from src, decoded with table
func NewPoller(src EventSource, table *KeyTable) *Poller {
	p := &Poller{
		events: make(chan tcell.Event, eventBufferSize),
		table:  table,
	}
	core.Go(func() {
		for {
			ev := src.PollEvent()
			if ev == nil {
				close(p.events)
				return
			}
			p.events <- ev
		}
	})
	return p
}

// Poll returns the next queued intent, waiting at most timeout.
// A non-positive timeout never blocks. A finalized source reads as quit.
func (p *Poller) Poll(timeout time.Duration) Intent {
	if timeout <= 0 {
		select {
		case ev, ok := <-p.events:
			return p.decode(ev, ok)
		default:
			return Intent{}
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev, ok := <-p.events:
		return p.decode(ev, ok)
	case <-timer.C:
		return Intent{}
	}
}

// Wait blocks until a bound key is pressed or ctx is cancelled
func (p *Poller) Wait(ctx context.Context) (Intent, error) {
	for {
		select {
		case <-ctx.Done():
			return Intent{}, ctx.Err()
		case ev, ok := <-p.events:
			if in := p.decode(ev, ok); in.Type != IntentNone {
				return in, nil
			}
		}
	}
}

// Drain discards keys typed ahead of a screen change
func (p *Poller) Drain() {
	for {
		select {
		case _, ok := <-p.events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (p *Poller) decode(ev tcell.Event, ok bool) Intent {
	if !ok {
		return Intent{Type: IntentQuit}
	}
	return p.table.Resolve(ev)
}
