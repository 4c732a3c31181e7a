package internal

import (
	"context"
	"encoding/json"
	"time"
)

// DefaultFrequency is the default emission rate in Hz.
const DefaultFrequency = 10

// EventType identifies the kind of event delivered to the emitter.
type EventType string

// Event types understood by the emitter. Anything else is logged as
// unexpected and ignored.
const (
	EventInput     EventType = "INPUT"
	EventTimerTick EventType = "TIMER_TICK"
	EventStop      EventType = "STOP"
)

// Event is one signal from the driving loop or host runtime.
type Event struct {
	Type     EventType
	Metadata interface{}
}

// Status is the emitter's answer to an event.
type Status int

const (
	// Continue keeps the loop running.
	Continue Status = iota
	// Stop terminates the loop.
	Stop
)

// SendOutput forwards one encoded record to the downstream sink. It is
// invoked at most once per tick per topic.
type SendOutput func(outputID string, data []byte, metadata interface{})

type stream struct {
	outputID string
	records  []interface{}
	index    int
}

// Emitter pops records off the extracted sequences at a bounded rate. It has
// one running state and stops once every stream is exhausted. The frequency
// bounds the minimum interval between emissions: ticks arriving faster are
// coalesced, ticks arriving slower emit late.
type Emitter struct {
	streams  []stream
	interval time.Duration
	lastSend time.Time
	now      func() time.Time
}

// NewEmitter builds an emitter over an extraction result. A non-positive
// frequency falls back to DefaultFrequency.
func NewEmitter(result *ExtractionResult, frequency int) *Emitter {
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	e := &Emitter{
		interval: time.Second / time.Duration(frequency),
		now:      time.Now,
	}
	for _, spec := range result.Topics() {
		e.streams = append(e.streams, stream{
			outputID: spec.OutputID,
			records:  result.Records(spec.Topic),
		})
	}
	e.lastSend = e.now()
	return e
}

func (e *Emitter) exhausted() bool {
	for i := range e.streams {
		if e.streams[i].index < len(e.streams[i].records) {
			return false
		}
	}
	return true
}

// OnEvent handles one event. Timer ticks drive emission; an explicit stop
// signal ends the loop without further emission; input and unknown events
// are ignored.
func (e *Emitter) OnEvent(ev Event, send SendOutput) Status {
	switch ev.Type {
	case EventInput:
		// Host input events carry no work for this pipeline.
	case EventTimerTick:
		now := e.now()
		if now.Sub(e.lastSend) < e.interval {
			return Continue
		}
		for i := range e.streams {
			s := &e.streams[i]
			if s.index >= len(s.records) {
				continue
			}
			data, err := json.Marshal(s.records[s.index])
			if err != nil {
				LogError("failed to encode %s record %d: %v", s.outputID, s.index, err)
				s.index++
				continue
			}
			send(s.outputID, data, ev.Metadata)
			s.index++
		}
		e.lastSend = now
		if e.exhausted() {
			LogInfo("finished sending all extracted records")
			return Stop
		}
	case EventStop:
		LogInfo("received stop")
		return Stop
	default:
		LogWarn("received unexpected event: %s", ev.Type)
	}
	return Continue
}

// Run drives the emitter with timer ticks at the configured frequency until
// every stream is exhausted or the context is canceled.
func (e *Emitter) Run(ctx context.Context, send SendOutput) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			e.OnEvent(Event{Type: EventStop}, send)
			return ctx.Err()
		case <-ticker.C:
			if e.OnEvent(Event{Type: EventTimerTick, Metadata: map[string]interface{}{}}, send) == Stop {
				return nil
			}
		}
	}
}
