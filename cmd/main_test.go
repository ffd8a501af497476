package main

import (
	"strings"
	"testing"
	"time"

	"artnet2mendeleev/internal/config"
	"artnet2mendeleev/internal/mendeleev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	defer func() { mqttHost, address, verbose = "", "", false }()
	mqttHost, address, verbose = "broker:1884", "2.0.0.10", true

	cfg := config.Default()
	require.NoError(t, applyFlags(&cfg))

	assert.Equal(t, "broker", cfg.MQTT.Host)
	assert.Equal(t, "1884", cfg.MQTT.Port)
	assert.Equal(t, "2.0.0.10", cfg.ArtNet.Address)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, strings.HasPrefix(cfg.MQTT.ClientID, name+"-"))
	assert.Equal(t, byte(1), cfg.MQTT.QoS())
}

func TestApplyFlagsKeepsClientID(t *testing.T) {
	cfg := config.Default()
	cfg.MQTT.ClientID = "wall-1"
	require.NoError(t, applyFlags(&cfg))
	assert.Equal(t, "wall-1", cfg.MQTT.ClientID)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestConvertConfigClientMQTT(t *testing.T) {
	cfg := config.Default().MQTT
	cfg.StatusTopic = true

	c := ConvertConfigClientMQTT(cfg, mendeleev.Topics{Prefix: "wall"})
	assert.Equal(t, "tcp", c.Schema)
	assert.Equal(t, "localhost", c.Host)
	assert.Equal(t, 10*time.Second, c.KeepAlive)
	assert.Equal(t, 5*time.Second, c.Reconnect)
	assert.Equal(t, "wall/bridge/status", c.StatusTopic)

	cfg.StatusTopic = false
	assert.Empty(t, ConvertConfigClientMQTT(cfg, mendeleev.Topics{}).StatusTopic)
}

func TestConvertConfigNode(t *testing.T) {
	n := ConvertConfigNode(config.Default().ArtNet)
	assert.Equal(t, "artnet2mendeleev", n.ShortName)
	assert.Equal(t, "ArtNet Mendeleev Output Node", n.LongName)
	assert.Equal(t, []uint16{0, 1}, n.Universes)
}
