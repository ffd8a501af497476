package bridge

import (
	"context"
	"time"

	"artnet2mendeleev/internal/artnet"
	"artnet2mendeleev/internal/logger"
	"artnet2mendeleev/internal/mendeleev"
)

// DefaultTick is how often an idle loop wakes up to report.
const DefaultTick = time.Second

// Publisher sends one message to the broker.
type Publisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// Options for publishing cabinet messages.
type Options struct {
	QoS    byte
	Retain bool
	Tick   time.Duration
}

// Stats counts what the bridge has done so far.
type Stats struct {
	Frames    uint64 // Frames - обработано кадров.
	Published uint64 // Published - отправлено сообщений.
	Failed    uint64 // Failed - ошибок публикации.
}

// Bridge feeds frames through the translator and publishes the changes.
// It is the only user of the translator; Run and HandleFrame must not be
// called concurrently.
type Bridge struct {
	log        *logger.Log
	translator *mendeleev.Translator
	pub        Publisher
	opts       Options
	stats      Stats
}

// New конструктор.
func New(log logger.Logger, translator *mendeleev.Translator, pub Publisher, opts Options) *Bridge {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	return &Bridge{
		log:        log.With(logger.Fields{"module": "bridge"}),
		translator: translator,
		pub:        pub,
		opts:       opts,
	}
}

// Run handles frames until ctx is done or frames is closed. It wakes up at
// least once per tick even when no frames arrive.
func (b *Bridge) Run(ctx context.Context, frames <-chan artnet.Frame) error {
	b.log.Debugf("running: group width %d, qos %d, retain %v",
		b.translator.GroupWidth(), b.opts.QoS, b.opts.Retain)

	t := time.NewTicker(b.opts.Tick)
	defer t.Stop()

	var last Stats
	for {
		select {
		case <-ctx.Done():
			return nil
		case f, ok := <-frames:
			if !ok {
				return nil
			}
			b.HandleFrame(f)
		case <-t.C:
			if b.stats != last {
				b.log.Debugf("frames: %d, published: %d, failed: %d",
					b.stats.Frames, b.stats.Published, b.stats.Failed)
				last = b.stats
			}
		}
	}
}

// HandleFrame publishes one message per changed cabinet of f, in slot order.
// A failed publish is logged and the walk goes on.
func (b *Bridge) HandleFrame(f artnet.Frame) {
	b.stats.Frames++
	for msg := range b.translator.Translate(f.Port, f.Data) {
		row, col := mendeleev.Position(msg.Slot - 1)
		log := b.log.With(logger.Fields{
			"element": msg.Element.Symbol(),
			"slot":    msg.Slot,
			"row":     row,
			"col":     col,
			"topic":   msg.Topic,
		})
		if err := b.pub.Publish(msg.Topic, msg.Payload, b.opts.QoS, b.opts.Retain); err != nil {
			b.stats.Failed++
			log.Errorf("publish failed: %v", err)
			continue
		}
		b.stats.Published++
		log.Tracef("published %v", msg.Payload)
	}
}

// Stats returns the counters. Call it from the goroutine running the
// bridge, or after Run has returned.
func (b *Bridge) Stats() Stats {
	return b.stats
}
