package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override, e.g. ARTNET2MENDELEEV_MQTT_SERVER.
const EnvPrefix = "ARTNET2MENDELEEV_"

// QoSAuto picks QoS 0 for a broker on localhost and 1 otherwise.
const QoSAuto = -1

// Config структура конфигурации.
type Config struct {
	Logger    LogConf       `toml:"logger" envPrefix:"LOG_"`          // Logger - конфигурация регистратора.
	MQTT      MQTTConf      `toml:"mqtt" envPrefix:"MQTT_"`           // MQTT - конфигурация MQTT клиента.
	ArtNet    ArtNetConf    `toml:"artnet" envPrefix:"ARTNET_"`       // ArtNet - конфигурация узла Art-Net.
	Mendeleev MendeleevConf `toml:"mendeleev" envPrefix:"MENDELEEV_"` // Mendeleev - раскладка шкафов.
}

// LogConf структура конфигурации.
type LogConf struct {
	Level string `toml:"log-level" env:"LEVEL"` // Level - уровень логирования.
}

// MQTTConf структура конфигурации.
type MQTTConf struct {
	ClientID    string `toml:"clientID" env:"CLIENT_ID"`        // ClientID - имя клиента, пусто - сгенерировать.
	Schema      string `toml:"schema" env:"SCHEMA"`             // Schema - тип подключения (tcp, ssl, ws).
	Host        string `toml:"server" env:"SERVER"`             // Host - адрес MQTT сервера.
	Port        string `toml:"port" env:"PORT"`                 // Port - порт MQTT сервера.
	User        string `toml:"user" env:"USER"`                 // User - логин для подключения к MQTT серверу.
	Password    string `toml:"password" env:"PASSWORD"`         // Password - пароль для подключения к MQTT серверу.
	Qos         int    `toml:"qos" env:"QOS"`                   // Qos - качество обслуживания, -1 - автоматически.
	Retain      bool   `toml:"retain" env:"RETAIN"`             // Retain - сохранять сообщения на брокере.
	KeepAlive   int    `toml:"keepalive" env:"KEEPALIVE"`       // KeepAlive - интервал keepalive, секунды.
	Reconnect   int    `toml:"reconnect" env:"RECONNECT"`       // Reconnect - интервал переподключения, секунды.
	Timeout     int    `toml:"connect-timeout" env:"TIMEOUT"`   // Timeout - ожидание первого подключения, секунды.
	TopicPrefix string `toml:"topic-prefix" env:"TOPIC_PREFIX"` // TopicPrefix - корень топиков.
	StatusTopic bool   `toml:"status-topic" env:"STATUS_TOPIC"` // StatusTopic - публиковать online/offline.
}

// ArtNetConf структура конфигурации.
type ArtNetConf struct {
	Address     string   `toml:"address" env:"ADDRESS"`           // Address - IP интерфейса, пусто - искать в Network.
	Network     string   `toml:"network" env:"NETWORK"`           // Network - подсеть Art-Net для поиска интерфейса.
	ShortName   string   `toml:"short-name" env:"SHORT_NAME"`     // ShortName - короткое имя узла.
	LongName    string   `toml:"long-name" env:"LONG_NAME"`       // LongName - полное имя узла.
	Universes   []uint16 `toml:"universes" env:"UNIVERSES"`       // Universes - вселенные портов, индекс = номер порта.
	ReadTimeout int      `toml:"read-timeout" env:"READ_TIMEOUT"` // ReadTimeout - период опроса, секунды.
	Buffer      int      `toml:"buffer" env:"BUFFER"`             // Buffer - размер очереди кадров.
}

// MendeleevConf структура конфигурации.
type MendeleevConf struct {
	GroupWidth int `toml:"group-width" env:"GROUP_WIDTH"` // GroupWidth - каналов на один шкаф.
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Logger: LogConf{Level: "info"},
		MQTT: MQTTConf{
			Schema:      "tcp",
			Host:        "localhost",
			Port:        "1883",
			Qos:         QoSAuto,
			KeepAlive:   10,
			Reconnect:   5,
			Timeout:     10,
			TopicPrefix: "mendeleev",
		},
		ArtNet: ArtNetConf{
			Network:     "2.0.0.0/8",
			ShortName:   "artnet2mendeleev",
			LongName:    "ArtNet Mendeleev Output Node",
			Universes:   []uint16{0x00, 0x01},
			ReadTimeout: 1,
			Buffer:      10,
		},
		Mendeleev: MendeleevConf{GroupWidth: 6},
	}
}

// NewConfig конструктор. Пустой путь - только значения по умолчанию и окружение.
func NewConfig(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return &cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return &cfg, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate проверяет значения конфигурации.
func (c *Config) Validate() error {
	var errs []error
	if c.MQTT.Host == "" {
		errs = append(errs, errors.New("mqtt: server is empty"))
	}
	if p, err := strconv.Atoi(c.MQTT.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("mqtt: invalid port %q", c.MQTT.Port))
	}
	if c.MQTT.Qos < QoSAuto || c.MQTT.Qos > 2 {
		errs = append(errs, fmt.Errorf("mqtt: invalid qos %d", c.MQTT.Qos))
	}
	if c.MQTT.TopicPrefix == "" || strings.ContainsAny(c.MQTT.TopicPrefix, "+#") {
		errs = append(errs, fmt.Errorf("mqtt: invalid topic prefix %q", c.MQTT.TopicPrefix))
	}
	if c.ArtNet.Address != "" && net.ParseIP(c.ArtNet.Address) == nil {
		errs = append(errs, fmt.Errorf("artnet: invalid address %q", c.ArtNet.Address))
	}
	if c.ArtNet.Address == "" {
		if _, _, err := net.ParseCIDR(c.ArtNet.Network); err != nil {
			errs = append(errs, fmt.Errorf("artnet: invalid network %q", c.ArtNet.Network))
		}
	}
	if len(c.ArtNet.Universes) == 0 {
		errs = append(errs, errors.New("artnet: no universes"))
	}
	seen := map[uint16]bool{}
	for _, u := range c.ArtNet.Universes {
		if u > 0x7fff {
			errs = append(errs, fmt.Errorf("artnet: universe %d exceeds 15 bits", u))
		}
		if seen[u] {
			errs = append(errs, fmt.Errorf("artnet: universe %d listed twice", u))
		}
		seen[u] = true
	}
	if c.ArtNet.ReadTimeout < 1 {
		errs = append(errs, fmt.Errorf("artnet: invalid read timeout %d", c.ArtNet.ReadTimeout))
	}
	if c.ArtNet.Buffer < 0 {
		errs = append(errs, fmt.Errorf("artnet: invalid buffer %d", c.ArtNet.Buffer))
	}
	if c.Mendeleev.GroupWidth < 1 || c.Mendeleev.GroupWidth > 512 {
		errs = append(errs, fmt.Errorf("mendeleev: invalid group width %d", c.Mendeleev.GroupWidth))
	}
	return errors.Join(errs...)
}

// QoS returns the effective QoS level, resolving QoSAuto against the broker host.
func (c MQTTConf) QoS() byte {
	if c.Qos == QoSAuto {
		if c.Host == "localhost" {
			return 0
		}
		return 1
	}
	return byte(c.Qos)
}

// SetHost applies a HOST[:PORT] value. A bracketed IPv6 host keeps its
// colons; a bare IPv6 address without brackets is taken as host only.
func (c *MQTTConf) SetHost(hostport string) error {
	if hostport == "" {
		return errors.New("empty host")
	}
	if strings.HasPrefix(hostport, "[") || strings.Count(hostport, ":") == 1 {
		host, port, err := net.SplitHostPort(hostport)
		if err == nil {
			if _, err := strconv.Atoi(port); err != nil {
				return fmt.Errorf("invalid port in %q", hostport)
			}
			c.Host, c.Port = host, port
			return nil
		}
		if !strings.HasPrefix(hostport, "[") {
			return fmt.Errorf("invalid host %q: %w", hostport, err)
		}
		c.Host = strings.TrimSuffix(strings.TrimPrefix(hostport, "["), "]")
		return nil
	}
	c.Host = hostport
	return nil
}
