package clientmqtt

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"artnet2mendeleev/internal/logger"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// ClientMQTT структура клиента MQTT.
type ClientMQTT struct {
	ctx       context.Context
	log       *logger.Log
	cfgClient MQTTConf
	client    mqtt.Client
	opts      *mqtt.ClientOptions
	failed    atomic.Uint64
}

// MQTTClient is a convenience interface to use within this application.
type MQTTClient interface {
	Start(ctx context.Context) error
	Stop() error
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

var _ MQTTClient = (*ClientMQTT)(nil)

// NewClient конструктор.
func NewClient(log logger.Logger, cfgClient MQTTConf) *ClientMQTT {
	return &ClientMQTT{
		log:       log.With(logger.Fields{"module": "mqtt"}),
		cfgClient: cfgClient,
	}
}

// DefaultClientID returns a client id unique to this process.
func DefaultClientID(name string) string {
	return fmt.Sprintf("%s-%s", name, uuid.NewString()[:8])
}

func (c *ClientMQTT) options() *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("%s://%s", c.cfgClient.Schema, hostPort(c.cfgClient.Host, c.cfgClient.Port))).
		SetClientID(c.cfgClient.ClientID).
		SetOnConnectHandler(c.connectHandler).
		SetConnectionLostHandler(c.connectLostHandler).
		SetOrderMatters(true).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetConnectRetry(false).
		SetConnectTimeout(c.connectTimeout())

	if c.cfgClient.User != "" {
		opts.SetUsername(c.cfgClient.User).SetPassword(c.cfgClient.Password)
	}
	if c.cfgClient.KeepAlive > 0 {
		opts.SetKeepAlive(c.cfgClient.KeepAlive)
	}
	if c.cfgClient.Reconnect > 0 {
		opts.SetMaxReconnectInterval(c.cfgClient.Reconnect)
	}
	if c.cfgClient.StatusTopic != "" {
		opts.SetWill(c.cfgClient.StatusTopic, statusOffline, 1, true)
	}
	return opts
}

func (c *ClientMQTT) connectTimeout() time.Duration {
	if c.cfgClient.ConnectTimeout > 0 {
		return c.cfgClient.ConnectTimeout
	}
	return defaultConnectTimeout
}

// routeLogs sends the paho package loggers into the client log. The chatty
// DEBUG stream is only routed when the log runs at debug or trace.
func (c *ClientMQTT) routeLogs() {
	mqtt.ERROR = c.log.StdLogger("error")
	mqtt.CRITICAL = c.log.StdLogger("error")
	mqtt.WARN = c.log.StdLogger("warn")
	switch c.log.GetLevel() {
	case "debug", "trace":
		mqtt.DEBUG = c.log.StdLogger("debug")
	default:
		mqtt.DEBUG = mqtt.NOOPLogger{}
	}
}

// Start connects to the broker and returns once the first connection is up.
// A failed first connection is reported as ErrConnectionFailed; later losses
// are handled by the paho auto-reconnect.
func (c *ClientMQTT) Start(ctx context.Context) error {
	c.routeLogs()

	c.ctx = ctx
	c.opts = c.options()
	c.client = mqtt.NewClient(c.opts)

	token := c.client.Connect()
	timer := time.NewTimer(c.connectTimeout())
	defer timer.Stop()
	select {
	case <-token.Done():
		if token.Error() != nil {
			return fmt.Errorf("%w: %w", ErrConnectionFailed, token.Error())
		}
	case <-timer.C:
		return fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, c.connectTimeout())
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrConnectionFailed, ctx.Err())
	}

	c.log.Infof("Status: %v", c.client.IsConnected())
	return nil
}

// Stop publishes the offline status and disconnects.
func (c *ClientMQTT) Stop() error {
	if c.client == nil || !c.client.IsConnected() {
		return nil
	}
	if c.cfgClient.StatusTopic != "" {
		token := c.client.Publish(c.cfgClient.StatusTopic, 1, true, statusOffline)
		if token.WaitTimeout(statusPublishTimeout) && token.Error() != nil {
			c.log.Errorf("offline status: %v", token.Error())
		}
	}
	c.client.Disconnect(disconnectQuiesce)
	return nil
}

// Publish sends payload to topic. Delivery is confirmed in the background;
// failures seen there are logged and counted in Failed.
func (c *ClientMQTT) Publish(topic string, payload []byte, qos byte, retained bool) error {
	if topic == "" || strings.ContainsAny(topic, "+#") {
		return fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	if qos > maxQoS {
		return ErrInvalidQoS
	}
	if c.client == nil || !c.client.IsConnectionOpen() {
		return ErrNotConnected
	}

	token := c.client.Publish(topic, qos, retained, payload)
	go func() {
		select {
		case <-c.ctx.Done():
			return
		case <-token.Done():
			if token.Error() != nil {
				c.failed.Add(1)
				c.log.Errorf("error publish topic %s. %v", topic, token.Error())
			}
		}
	}()
	return nil
}

// Failed returns the number of publications that failed after being queued.
func (c *ClientMQTT) Failed() uint64 {
	return c.failed.Load()
}

func (c *ClientMQTT) connectHandler(client mqtt.Client) {
	c.log.Info("client connected to server")
	if c.cfgClient.StatusTopic == "" {
		return
	}
	token := client.Publish(c.cfgClient.StatusTopic, 1, true, statusOnline)
	go func() {
		if token.WaitTimeout(statusPublishTimeout) && token.Error() != nil {
			c.log.Errorf("online status: %v", token.Error())
		}
	}()
}

func (c *ClientMQTT) connectLostHandler(_ mqtt.Client, err error) {
	c.log.Errorf("server connect lost: %v", err)
}

func hostPort(host, port string) string {
	if strings.Contains(host, ":") {
		return fmt.Sprintf("[%s]:%s", host, port)
	}
	return fmt.Sprintf("%s:%s", host, port)
}
