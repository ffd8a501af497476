package artnet

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrNoInterface is returned when no local interface sits inside the Art-Net network.
var ErrNoInterface = errors.New("no interface found")

// FindArtNetIP finds the matching interface with an IP address inside addressRange.
func FindArtNetIP(addressRange string) (net.IP, error) {
	_, cidrNet, err := net.ParseCIDR(addressRange)
	if err != nil {
		return nil, fmt.Errorf("invalid art-net network %q: %w", addressRange, err)
	}
	address, err := net.InterfaceAddrs()
	if err != nil {
		return nil, fmt.Errorf("error getting ips: %w", err)
	}
	return findIP(cidrNet, address)
}

func findIP(cidrNet *net.IPNet, address []net.Addr) (net.IP, error) {
	if ip := matchIP(cidrNet, address); ip != nil {
		return ip, nil
	}
	return nil, fmt.Errorf("%w in %s", ErrNoInterface, cidrNet.String())
}

func matchIP(cidrNet *net.IPNet, address []net.Addr) net.IP {
	for _, addr := range address {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		ip := ipNet.IP

		if strings.Contains(ip.String(), ":") {
			continue
		}

		if cidrNet.Contains(ip) {
			return ip
		}
	}
	return nil
}

// ResolveIP returns address when set, otherwise the interface inside network.
func ResolveIP(address, network string) (net.IP, error) {
	if address == "" {
		return FindArtNetIP(network)
	}
	ip := net.ParseIP(address)
	if ip == nil {
		return nil, fmt.Errorf("invalid art-net address %q", address)
	}
	return ip, nil
}
