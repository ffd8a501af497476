package artnet

import (
	"errors"
	"fmt"

	"github.com/Haba1234/go-artnet"
	"github.com/Haba1234/go-artnet/packet"
)

// dmxHeaderSize is the ArtDMX header up to and including the length field.
const dmxHeaderSize = 18

var (
	// ErrNotDMX is returned by DecodeDMX for valid Art-Net packets of another kind.
	ErrNotDMX = errors.New("not an ArtDMX packet")

	// ErrShortPacket is returned for datagrams shorter than an ArtDMX header.
	ErrShortPacket = errors.New("short art-net packet")
)

// DecodeDMX parses one Art-Net datagram and returns the universe and the
// channel data of an ArtDMX packet.
func DecodeDMX(b []byte) (uint16, []byte, error) {
	if len(b) < dmxHeaderSize {
		return 0, nil, ErrShortPacket
	}
	// Short frames are zero padded to a full universe before decoding.
	buf := make([]byte, dmxHeaderSize+UniverseSize)
	copy(buf, b)

	p, err := packet.Unmarshal(buf)
	if err != nil {
		return 0, nil, fmt.Errorf("art-net: %w", err)
	}
	dmx, ok := p.(*packet.ArtDMXPacket)
	if !ok {
		return 0, nil, ErrNotDMX
	}
	universe, data := dmxData(dmx)
	if avail := len(b) - dmxHeaderSize; len(data) > avail {
		data = data[:avail]
	}
	return universe, data, nil
}

func dmxData(p *packet.ArtDMXPacket) (uint16, []byte) {
	n := int(p.Length)
	if n > UniverseSize {
		n = UniverseSize
	}
	universe := AddressToUniverse(artnet.Address{Net: p.Net, SubUni: p.SubUni})
	return universe, append([]byte(nil), p.Data[:n]...)
}
