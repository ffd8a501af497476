package bridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"artnet2mendeleev/internal/artnet"
	"artnet2mendeleev/internal/config"
	"artnet2mendeleev/internal/logger"
	"artnet2mendeleev/internal/mendeleev"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	topic    string
	payload  []byte
	qos      byte
	retained bool
}

// fakePublisher records publications and fails the topics listed in fail.
type fakePublisher struct {
	fail map[string]bool
	sent []published
	errs int
}

func (p *fakePublisher) Publish(topic string, payload []byte, qos byte, retained bool) error {
	if p.fail[topic] {
		p.errs++
		return errors.New("broker gone")
	}
	p.sent = append(p.sent, published{topic, payload, qos, retained})
	return nil
}

func newTestBridge(t *testing.T, pub Publisher, opts Options) *Bridge {
	t.Helper()
	l, err := logger.NewLogger(config.LogConf{Level: "error"})
	require.NoError(t, err)
	g, err := mendeleev.NewGrid()
	require.NoError(t, err)
	tr, err := mendeleev.NewTranslator(g, mendeleev.DefaultGroupWidth, mendeleev.Topics{})
	require.NoError(t, err)
	return New(l, tr, pub, opts)
}

func frame(groups map[int][]byte) []byte {
	data := make([]byte, artnet.UniverseSize)
	for g, b := range groups {
		copy(data[g*6:], b)
	}
	return data
}

func TestHandleFramePublishesChanges(t *testing.T) {
	pub := &fakePublisher{}
	b := newTestBridge(t, pub, Options{QoS: 1, Retain: true})

	b.HandleFrame(artnet.Frame{Port: 0, Data: frame(map[int][]byte{0: {255, 0, 0, 0, 0, 0}})})

	require.Len(t, pub.sent, 1)
	assert.Equal(t, published{"mendeleev/1/setcolor", []byte{255, 0, 0, 0, 0, 0}, 1, true}, pub.sent[0])
	assert.Equal(t, Stats{Frames: 1, Published: 1}, b.Stats())

	// Same frame again: nothing to publish.
	b.HandleFrame(artnet.Frame{Port: 0, Data: frame(map[int][]byte{0: {255, 0, 0, 0, 0, 0}})})
	assert.Len(t, pub.sent, 1)
	assert.Equal(t, Stats{Frames: 2, Published: 1}, b.Stats())
}

func TestHandleFrameGapSlot(t *testing.T) {
	pub := &fakePublisher{}
	b := newTestBridge(t, pub, Options{})

	b.HandleFrame(artnet.Frame{Port: 0, Data: frame(map[int][]byte{1: {9, 9, 9, 9, 9, 9}})})
	assert.Empty(t, pub.sent)
}

func TestHandleFramePublishFailureContinues(t *testing.T) {
	pub := &fakePublisher{fail: map[string]bool{"mendeleev/1/setcolor": true}}
	b := newTestBridge(t, pub, Options{})

	data := frame(map[int][]byte{
		0:  {1, 0, 0, 0, 0, 0}, // H
		17: {2, 0, 0, 0, 0, 0}, // He
		18: {3, 0, 0, 0, 0, 0}, // Li
	})
	b.HandleFrame(artnet.Frame{Port: 0, Data: data})

	require.Len(t, pub.sent, 2)
	assert.Equal(t, "mendeleev/2/setcolor", pub.sent[0].topic)
	assert.Equal(t, "mendeleev/3/setcolor", pub.sent[1].topic)
	assert.Equal(t, 1, pub.errs)
	assert.Equal(t, Stats{Frames: 1, Published: 2, Failed: 1}, b.Stats())

	// The cache already holds the failed group, so it is not retried.
	pub.fail = nil
	b.HandleFrame(artnet.Frame{Port: 0, Data: data})
	assert.Len(t, pub.sent, 2)
}

func TestHandleFrameLogsGridPosition(t *testing.T) {
	l, err := logger.NewLogger(config.LogConf{Level: "error"})
	require.NoError(t, err)
	hook := test.NewLocal(l.Logger)
	g, err := mendeleev.NewGrid()
	require.NoError(t, err)
	tr, err := mendeleev.NewTranslator(g, mendeleev.DefaultGroupWidth, mendeleev.Topics{})
	require.NoError(t, err)

	pub := &fakePublisher{fail: map[string]bool{"mendeleev/2/setcolor": true, "mendeleev/3/setcolor": true}}
	b := New(l, tr, pub, Options{})
	b.HandleFrame(artnet.Frame{Port: 0, Data: frame(map[int][]byte{
		17: {2, 0, 0, 0, 0, 0}, // He, last column of the first row
		18: {3, 0, 0, 0, 0, 0}, // Li, first column of the second row
	})})

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "He", entries[0].Data["element"])
	assert.Equal(t, 18, entries[0].Data["slot"])
	assert.Equal(t, 0, entries[0].Data["row"])
	assert.Equal(t, 17, entries[0].Data["col"])
	assert.Equal(t, "Li", entries[1].Data["element"])
	assert.Equal(t, 1, entries[1].Data["row"])
	assert.Equal(t, 0, entries[1].Data["col"])
}

func TestHandleFrameSecondPort(t *testing.T) {
	pub := &fakePublisher{}
	b := newTestBridge(t, pub, Options{})

	// First group of port 1 is slot 86 (Sn).
	b.HandleFrame(artnet.Frame{Port: 1, Data: frame(map[int][]byte{0: {0, 10, 0, 0, 0, 0}})})
	require.Len(t, pub.sent, 1)
	assert.Equal(t, "mendeleev/50/setcolor", pub.sent[0].topic)

	// Port 2 starts past the last slot.
	b.HandleFrame(artnet.Frame{Port: 2, Data: frame(map[int][]byte{0: {1, 1, 1, 1, 1, 1}})})
	assert.Len(t, pub.sent, 1)
}

func TestRun(t *testing.T) {
	pub := &fakePublisher{}
	b := newTestBridge(t, pub, Options{Tick: 10 * time.Millisecond})

	frames := make(chan artnet.Frame, 3)
	frames <- artnet.Frame{Port: 0, Data: frame(map[int][]byte{0: {1, 1, 1, 1, 1, 1}})}
	frames <- artnet.Frame{Port: 0, Data: frame(map[int][]byte{0: {1, 1, 1, 1, 1, 1}})}
	frames <- artnet.Frame{Port: 0, Data: frame(map[int][]byte{0: {2, 1, 1, 1, 1, 1}})}
	close(frames)

	require.NoError(t, b.Run(context.Background(), frames))
	require.Len(t, pub.sent, 2)
	assert.Equal(t, []byte{2, 1, 1, 1, 1, 1}, pub.sent[1].payload)
	assert.Equal(t, uint64(3), b.Stats().Frames)
}

func TestRunStopsOnCancel(t *testing.T) {
	b := newTestBridge(t, &fakePublisher{}, Options{Tick: 5 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error)
	go func() { done <- b.Run(ctx, make(chan artnet.Frame)) }()

	// Let a few idle ticks pass first.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
