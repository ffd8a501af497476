package artnet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"artnet2mendeleev/internal/logger"
	"github.com/Haba1234/go-artnet"
	"github.com/Haba1234/go-artnet/packet"
	"github.com/Haba1234/go-artnet/packet/code"
)

// ArtNet is an output node for the ArtNet protocol (DMX over UDP/IP). It
// hands the DMX data of its patched universes to a frame channel.
type ArtNet struct {
	logger   *logger.Log
	node     *artnet.Node
	ports    *PortMap
	ctx      context.Context
	frames   chan<- Frame
	seq      map[uint16]*sequencer
	received atomic.Uint64
	ignored  atomic.Uint64
	stale    atomic.Uint64
}

// sequencer serializes delivery of one universe. go-artnet handles every
// datagram in its own goroutine, so frames of a universe may race.
type sequencer struct {
	mu   sync.Mutex
	last uint8
}

// accept reports whether seq is newer than the last accepted sequence and
// records it. Zero disables resequencing; numbers wrap after 0xff.
func (s *sequencer) accept(seq uint8) bool {
	if seq == 0 {
		return true
	}
	if s.last != 0 && int8(seq-s.last) <= 0 {
		return false
	}
	s.last = seq
	return true
}

// Node is a convenience interface to use within this application.
type Node interface {
	Start(ctx context.Context, frames chan<- Frame) error
	Stop()
}

var _ Node = (*ArtNet)(nil)

// NewNode returns an art-net node bound to the configured interface.
func NewNode(log logger.Logger, cfg NodeConf) (*ArtNet, error) {
	ports, err := NewPortMap(cfg.Universes)
	if err != nil {
		return nil, err
	}

	ip, err := ResolveIP(cfg.Address, cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to find the art-net IP: %w", err)
	}

	l := log.With(logger.Fields{"module": "art-net"})
	l.Infof("Using ArtNet IP %s and name %s", ip.String(), cfg.ShortName)

	node := artnet.NewNode(cfg.ShortName, code.StNode, ip, artnet.NewDefaultLogger(l.GetLevel()))
	node.Config.Description = cfg.LongName
	for port, u := range ports.Universes() {
		addr := UniverseToAddress(u)
		node.Config.OutputPorts = append(node.Config.OutputPorts, artnet.OutputPort{Address: addr})
		l.Debugf("port %d: universe %s", port, addr.String())
	}

	return newArtNet(l, node, ports), nil
}

func newArtNet(log *logger.Log, node *artnet.Node, ports *PortMap) *ArtNet {
	seq := make(map[uint16]*sequencer, len(ports.Universes()))
	for _, u := range ports.Universes() {
		seq[u] = &sequencer{}
	}
	return &ArtNet{
		logger: log,
		node:   node,
		ports:  ports,
		seq:    seq,
	}
}

// Start the ArtNet node. Frames of patched universes are sent to frames
// until ctx is done.
func (c *ArtNet) Start(ctx context.Context, frames chan<- Frame) error {
	if c.node == nil {
		return errors.New("art-net node is not configured")
	}
	c.ctx = ctx
	c.frames = frames
	c.node.RegisterCallback(code.OpDMX, c.dmxHandler)
	if err := c.node.Start(); err != nil {
		return fmt.Errorf("failed to start node: %w", err)
	}
	return nil
}

// Stop the ArtNet node.
func (c *ArtNet) Stop() {
	if c.node != nil {
		c.node.Stop()
	}
}

// Stats returns the number of delivered frames and of frames for universes
// that are not patched.
func (c *ArtNet) Stats() (received, ignored uint64) {
	return c.received.Load(), c.ignored.Load()
}

// Stale returns the number of frames dropped because a newer sequence of
// the same universe was already delivered.
func (c *ArtNet) Stale() uint64 {
	return c.stale.Load()
}

func (c *ArtNet) dmxHandler(p packet.ArtNetPacket) {
	dmx, ok := p.(*packet.ArtDMXPacket)
	if !ok {
		return
	}
	universe, data := dmxData(dmx)
	c.deliver(universe, dmx.Sequence, data)
}

// deliver queues the frame for universe. It blocks while the queue is full
// and gives up once the context is done. Frames behind the last delivered
// sequence of their universe are dropped.
func (c *ArtNet) deliver(universe uint16, sequence uint8, data []byte) bool {
	f, ok := c.ports.Frame(universe, data)
	if !ok {
		c.ignored.Add(1)
		c.logger.Tracef("DMX. universe %d is not patched", universe)
		return false
	}

	// Held until the frame is queued so that order is kept.
	s := c.seq[universe]
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accept(sequence) {
		c.stale.Add(1)
		c.logger.Tracef("DMX. universe %d: stale sequence %d", universe, sequence)
		return false
	}
	select {
	case <-c.ctx.Done():
		return false
	case c.frames <- f:
		c.received.Add(1)
		return true
	}
}
