package clientmqtt

import (
	"errors"
	"time"
)

type MQTTConf struct {
	ClientID       string        // ClientID - уникальное имя клиента для брокеров.
	Schema         string        // Schema - тип подключения.
	Host           string        // Host - адрес MQTT сервера.
	Port           string        // Port - порт MQTT сервера.
	User           string        // User - логин для подключения к MQTT серверу.
	Password       string        // Password - пароль для подключения к MQTT серверу.
	KeepAlive      time.Duration // KeepAlive - интервал keepalive.
	Reconnect      time.Duration // Reconnect - максимальный интервал переподключения.
	ConnectTimeout time.Duration // ConnectTimeout - ожидание первого подключения.
	StatusTopic    string        // StatusTopic - топик online/offline, пусто - не публиковать.
}

const (
	statusOnline  = "online"
	statusOffline = "offline"

	maxQoS = 2

	defaultConnectTimeout = 10 * time.Second
	disconnectQuiesce     = 500 // milliseconds
	statusPublishTimeout  = time.Second
)

var (
	// ErrConnectionFailed is returned when the first connection to the broker fails.
	ErrConnectionFailed = errors.New("mqtt: connection failed")

	// ErrNotConnected is returned when publishing without an open connection.
	ErrNotConnected = errors.New("mqtt: client not connected")

	// ErrInvalidQoS is returned for QoS levels above 2.
	ErrInvalidQoS = errors.New("mqtt: invalid QoS level (must be 0, 1, or 2)")

	// ErrInvalidTopic is returned for empty topics or topics with wildcards.
	ErrInvalidTopic = errors.New("mqtt: invalid topic")
)
