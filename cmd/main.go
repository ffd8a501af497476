package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artnet2mendeleev/internal/artnet"
	"artnet2mendeleev/internal/bridge"
	"artnet2mendeleev/internal/clientmqtt"
	"artnet2mendeleev/internal/config"
	"artnet2mendeleev/internal/logger"
	"artnet2mendeleev/internal/mendeleev"
	"artnet2mendeleev/internal/replay"
)

const name = "artnet2mendeleev"

// version is set at build time with -ldflags "-X main.version=...".
var version = "<undefined version>"

var (
	configFile  string
	mqttHost    string
	address     string
	verbose     bool
	showVersion bool
	replayFile  string
	realtime    bool
)

func init() {
	flag.StringVar(&configFile, "config", "configs/conf.toml", "Path to configuration file, empty for defaults")
	flag.StringVar(&mqttHost, "host", "", "MQTT broker as HOST[:PORT]")
	flag.StringVar(&address, "address", "", "IP of the interface the Art-Net node binds to")
	flag.BoolVar(&verbose, "verbose", false, "Turn on verbosity")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.StringVar(&replayFile, "replay", "", "Replay Art-Net DMX from a pcap file instead of listening")
	flag.BoolVar(&realtime, "realtime", true, "Keep the capture timing when replaying")
}

func main() {
	flag.Parse()
	if showVersion {
		fmt.Fprintf(os.Stderr, "%s %s\n", name, version)
		os.Exit(0)
	}

	cfg, err := config.NewConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration file read error: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid arguments: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create a logger: %v\n", err)
		os.Exit(1)
	}
	log.With(logger.Fields{"module": "logger"}).Debug("newLogger created ok")

	if err := run(log, cfg); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

func applyFlags(cfg *config.Config) error {
	if mqttHost != "" {
		if err := cfg.MQTT.SetHost(mqttHost); err != nil {
			return err
		}
	}
	if address != "" {
		cfg.ArtNet.Address = address
	}
	if verbose {
		cfg.Logger.Level = "debug"
	}
	if cfg.MQTT.ClientID == "" {
		cfg.MQTT.ClientID = clientmqtt.DefaultClientID(name)
	}
	return nil
}

func run(log *logger.Log, cfg *config.Config) error {
	grid, err := mendeleev.NewGrid()
	if err != nil {
		return fmt.Errorf("failed to build the grid: %w", err)
	}
	topics := mendeleev.Topics{Prefix: cfg.MQTT.TopicPrefix}
	translator, err := mendeleev.NewTranslator(grid, cfg.Mendeleev.GroupWidth, topics)
	if err != nil {
		return fmt.Errorf("failed to create the translator: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	client := clientmqtt.NewClient(log, ConvertConfigClientMQTT(cfg.MQTT, topics))
	if err := client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start MQTT service: %w", err)
	}
	defer func() {
		if err := client.Stop(); err != nil {
			log.Error("failed to stop MQTT service:", err.Error())
		}
	}()
	log.With(logger.Fields{"module": "mqtt"}).Info("MQTT Connection success")

	// Канал для передачи кадров DMX в мост.
	frames := make(chan artnet.Frame, cfg.ArtNet.Buffer)

	b := bridge.New(log, translator, client, bridge.Options{
		QoS:    cfg.MQTT.QoS(),
		Retain: cfg.MQTT.Retain,
		Tick:   time.Duration(cfg.ArtNet.ReadTimeout) * time.Second,
	})
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx, frames) }()

	if replayFile != "" {
		// The bridge drains the queue and stops once frames is closed.
		err = replayCapture(ctx, log, cfg, frames)
		close(frames)
	} else {
		err = listen(ctx, log, cfg, frames)
		cancel()
	}
	runErr := <-done

	stats := b.Stats()
	log.With(logger.Fields{"module": "bridge"}).Infof("frames: %d, published: %d, failed: %d, failed after queueing: %d",
		stats.Frames, stats.Published, stats.Failed, client.Failed())
	return errors.Join(err, runErr)
}

func listen(ctx context.Context, log *logger.Log, cfg *config.Config, frames chan<- artnet.Frame) error {
	a, err := artnet.NewNode(log, ConvertConfigNode(cfg.ArtNet))
	if err != nil {
		return fmt.Errorf("error while creating a new art-net node: %w", err)
	}
	log.With(logger.Fields{"module": "art-net"}).Debug("NewNode created ok")

	if err := a.Start(ctx, frames); err != nil {
		return fmt.Errorf("failed to start art-net service: %w", err)
	}
	<-ctx.Done()
	a.Stop()

	received, ignored := a.Stats()
	log.With(logger.Fields{"module": "art-net"}).Infof("frames received: %d, ignored: %d, out of sequence: %d",
		received, ignored, a.Stale())
	return nil
}

func replayCapture(ctx context.Context, log *logger.Log, cfg *config.Config, frames chan<- artnet.Frame) error {
	ports, err := artnet.NewPortMap(cfg.ArtNet.Universes)
	if err != nil {
		return err
	}
	p := replay.NewPlayer(log, ports, replay.Options{Realtime: realtime})
	_, err = p.PlayFile(ctx, replayFile, frames)
	return err
}

// ConvertConfigClientMQTT преобразует структуры.
func ConvertConfigClientMQTT(cfg config.MQTTConf, topics mendeleev.Topics) clientmqtt.MQTTConf {
	c := clientmqtt.MQTTConf{
		ClientID:       cfg.ClientID,
		Schema:         cfg.Schema,
		Host:           cfg.Host,
		Port:           cfg.Port,
		User:           cfg.User,
		Password:       cfg.Password,
		KeepAlive:      time.Duration(cfg.KeepAlive) * time.Second,
		Reconnect:      time.Duration(cfg.Reconnect) * time.Second,
		ConnectTimeout: time.Duration(cfg.Timeout) * time.Second,
	}
	if cfg.StatusTopic {
		c.StatusTopic = topics.Status()
	}
	return c
}

// ConvertConfigNode преобразует структуры.
func ConvertConfigNode(cfg config.ArtNetConf) artnet.NodeConf {
	return artnet.NodeConf{
		Address:   cfg.Address,
		Network:   cfg.Network,
		ShortName: cfg.ShortName,
		LongName:  cfg.LongName,
		Universes: cfg.Universes,
	}
}
