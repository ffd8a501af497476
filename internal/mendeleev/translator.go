package mendeleev

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
)

// UniverseSize is the number of DMX channels in one Art-Net universe.
const UniverseSize = 512

// DefaultGroupWidth is the number of channels a cabinet listens to.
const DefaultGroupWidth = 6

// ErrGroupWidth is returned for channel group widths outside [1, UniverseSize].
var ErrGroupWidth = errors.New("invalid channel group width")

// Message is one outbound publication for a changed cabinet.
type Message struct {
	Element Element
	Slot    int
	Topic   string
	Payload []byte
}

// Translator turns DMX frames into cabinet messages, suppressing groups
// whose bytes have not changed since they were last published.
//
// The cache has no lock: Translate must be called from a single goroutine.
type Translator struct {
	grid    *Grid
	topics  Topics
	width   int
	perPort int
	cache   [MaxElement + 1][]byte
}

// NewTranslator creates a translator with an all-zero cache.
func NewTranslator(grid *Grid, width int, topics Topics) (*Translator, error) {
	if grid == nil {
		return nil, errors.New("translator needs a grid")
	}
	if width < 1 || width > UniverseSize {
		return nil, fmt.Errorf("%w: %d", ErrGroupWidth, width)
	}

	t := &Translator{
		grid:    grid,
		topics:  topics,
		width:   width,
		perPort: UniverseSize / width,
	}
	for e := H; e <= MaxElement; e++ {
		t.cache[e] = make([]byte, width)
	}
	return t, nil
}

// GroupWidth returns the configured channel group width.
func (t *Translator) GroupWidth() int {
	return t.width
}

// FirstSlot returns the slot of the first channel group on port.
func (t *Translator) FirstSlot(port int) int {
	return port*t.perPort + 1
}

// Translate walks frame in channel groups and yields a message for every
// cabinet whose group differs from the cache. The cache is updated before
// the message is yielded. Messages come out in slot order.
//
// A trailing partial group is dropped. The walk ends at the last grid slot.
func (t *Translator) Translate(port int, frame []byte) iter.Seq[Message] {
	return func(yield func(Message) bool) {
		if port < 0 {
			return
		}
		slot := t.FirstSlot(port)
		for n, off := 0, 0; n < t.perPort && off+t.width <= len(frame); n, off = n+1, off+t.width {
			e, err := t.grid.Lookup(slot)
			if err != nil {
				return
			}
			slot++
			if e == NoCabinet {
				continue
			}

			group := frame[off : off+t.width]
			if bytes.Equal(t.cache[e], group) {
				continue
			}
			copy(t.cache[e], group)

			msg := Message{
				Element: e,
				Slot:    slot - 1,
				Topic:   t.topics.SetColor(e),
				Payload: bytes.Clone(group),
			}
			if !yield(msg) {
				return
			}
		}
	}
}

// Cached returns a copy of the last published group for e, or nil if e is
// not a cabinet.
func (t *Translator) Cached(e Element) []byte {
	if !e.Valid() {
		return nil
	}
	return bytes.Clone(t.cache[e])
}
