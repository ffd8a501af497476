// Package replay feeds Art-Net DMX packets captured in a pcap file into the
// bridge, so a show can be played back without a lighting desk.
package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"artnet2mendeleev/internal/artnet"
	"artnet2mendeleev/internal/logger"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// ArtNetPort is the UDP port Art-Net traffic uses.
const ArtNetPort = 6454

// Options control playback.
type Options struct {
	// Realtime waits between packets as long as the capture did.
	Realtime bool
	// Port is the UDP port to pick packets from, ArtNetPort when zero.
	Port uint16
}

// Result counts what a replay did.
type Result struct {
	Packets int // Packets - UDP пакетов Art-Net в файле.
	Frames  int // Frames - кадров отправлено в мост.
	Skipped int // Skipped - пакетов не DMX или чужих вселенных.
}

// Player reads a capture and sends frames of patched universes.
type Player struct {
	log   *logger.Log
	ports *artnet.PortMap
	opts  Options
}

// NewPlayer конструктор.
func NewPlayer(log logger.Logger, ports *artnet.PortMap, opts Options) *Player {
	if opts.Port == 0 {
		opts.Port = ArtNetPort
	}
	return &Player{
		log:   log.With(logger.Fields{"module": "replay"}),
		ports: ports,
		opts:  opts,
	}
}

// PlayFile replays the pcap file at path.
func (p *Player) PlayFile(ctx context.Context, path string, frames chan<- artnet.Frame) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open capture %s: %w", path, err)
	}
	defer f.Close()
	return p.Play(ctx, f, frames)
}

// Play replays a pcap stream. It stops at the end of the capture or when
// ctx is done.
func (p *Player) Play(ctx context.Context, r io.Reader, frames chan<- artnet.Frame) (Result, error) {
	var res Result
	reader, err := pcapgo.NewReader(r)
	if err != nil {
		return res, fmt.Errorf("failed to read capture: %w", err)
	}

	var prev time.Time
	for {
		data, ci, err := reader.ReadPacketData()
		if errors.Is(err, io.EOF) {
			p.log.Infof("replay done: %d packets, %d frames, %d skipped", res.Packets, res.Frames, res.Skipped)
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("failed to read packet: %w", err)
		}

		payload, ok := p.artNetPayload(gopacket.NewPacket(data, reader.LinkType(), gopacket.Default))
		if !ok {
			continue
		}
		res.Packets++

		universe, dmx, err := artnet.DecodeDMX(payload)
		if err != nil {
			res.Skipped++
			p.log.Tracef("packet %d: %v", res.Packets, err)
			continue
		}
		f, ok := p.ports.Frame(universe, dmx)
		if !ok {
			res.Skipped++
			continue
		}

		if p.opts.Realtime && !prev.IsZero() {
			if err := sleep(ctx, ci.Timestamp.Sub(prev)); err != nil {
				return res, nil
			}
		}
		prev = ci.Timestamp

		select {
		case <-ctx.Done():
			return res, nil
		case frames <- f:
			res.Frames++
		}
	}
}

func (p *Player) artNetPayload(pkt gopacket.Packet) ([]byte, bool) {
	udpLayer := pkt.Layer(layers.LayerTypeUDP)
	if udpLayer == nil {
		return nil, false
	}
	udp, ok := udpLayer.(*layers.UDP)
	if !ok || uint16(udp.DstPort) != p.opts.Port {
		return nil, false
	}
	return udp.Payload, true
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
