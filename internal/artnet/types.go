package artnet

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Haba1234/go-artnet"
)

// UniverseSize is the number of channels in one DMX universe.
const UniverseSize = 512

// Frame is the latest DMX data of one universe, tagged with the node port
// that universe is patched to.
type Frame struct {
	Port     int    // Port: номер порта узла, индекс в списке вселенных.
	Universe uint16 // Universe: старший байт - Net, младший байт - SubUni.
	Data     []byte // Data: значения каналов, не более 512 байт.
}

// NodeConf структура конфигурации узла.
type NodeConf struct {
	Address   string   // Address - IP интерфейса, пусто - искать в Network.
	Network   string   // Network - подсеть Art-Net.
	ShortName string   // ShortName - короткое имя узла.
	LongName  string   // LongName - полное имя узла.
	Universes []uint16 // Universes - вселенные портов.
}

// ErrNoUniverses is returned for an empty port map.
var ErrNoUniverses = errors.New("no universes configured")

// PortMap assigns node ports to universes: port i listens on universes[i].
type PortMap struct {
	universes []uint16
	ports     map[uint16]int
}

// NewPortMap builds a port map. Universes must be unique and fit 15 bits.
func NewPortMap(universes []uint16) (*PortMap, error) {
	if len(universes) == 0 {
		return nil, ErrNoUniverses
	}
	m := &PortMap{
		universes: append([]uint16(nil), universes...),
		ports:     make(map[uint16]int, len(universes)),
	}
	for i, u := range universes {
		if u > 0x7fff {
			return nil, fmt.Errorf("universe %d exceeds 15 bits", u)
		}
		if _, ok := m.ports[u]; ok {
			return nil, fmt.Errorf("universe %d patched twice", u)
		}
		m.ports[u] = i
	}
	return m, nil
}

// Port returns the node port patched to universe.
func (m *PortMap) Port(universe uint16) (int, bool) {
	p, ok := m.ports[universe]
	return p, ok
}

// Universes returns the patched universes in port order.
func (m *PortMap) Universes() []uint16 {
	return append([]uint16(nil), m.universes...)
}

// Frame builds a frame for universe, copying data and clamping it to one
// universe. ok is false when the universe is not patched.
func (m *PortMap) Frame(universe uint16, data []byte) (Frame, bool) {
	port, ok := m.Port(universe)
	if !ok {
		return Frame{}, false
	}
	if len(data) > UniverseSize {
		data = data[:UniverseSize]
	}
	return Frame{
		Port:     port,
		Universe: universe,
		Data:     append([]byte(nil), data...),
	}, true
}

// UniverseToAddress converts a dmx universe to art-net address.
// universe: старший байт - Net, младший байт - SubUni.
func UniverseToAddress(universe uint16) artnet.Address {
	v := make([]uint8, 2)
	binary.BigEndian.PutUint16(v, universe)

	return artnet.Address{
		Net:    v[0],
		SubUni: v[1],
	}
}

// AddressToUniverse is the inverse of UniverseToAddress.
func AddressToUniverse(a artnet.Address) uint16 {
	return binary.BigEndian.Uint16([]byte{a.Net, a.SubUni})
}
