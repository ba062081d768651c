package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lixenwraith/reel/config"
	"github.com/lixenwraith/reel/engine"
	"github.com/lixenwraith/reel/player"
	"github.com/lixenwraith/reel/render"
	"github.com/lixenwraith/reel/status"
)

// StreamCmd publishes every rendered frame to an LED strip controller
// The animation is scaled to fill the whole strip
type StreamCmd struct {
	Frames []string `arg:"" optional:"" type:"existingfile" help:"Images to play in order, overrides the configured source."`
	Broker string   `help:"MQTT broker URL, overrides mqtt.url."`
	Topic  string   `help:"MQTT topic, overrides mqtt.topic."`
	Pixels int      `help:"Strip length, overrides mqtt.pixels."`
}

func (c *StreamCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g, c.Frames)
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.ValidateStream(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frames, err := loadFrames(ctx, cfg)
	if err != nil {
		return err
	}

	client, err := connect(cfg.MQTT)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)

	strip := render.NewStrip(cfg.MQTT.Pixels, client, render.StripOptions{
		Topic:      cfg.MQTT.Topic,
		QoS:        cfg.MQTT.QoS,
		Brightness: cfg.MQTT.Brightness,
		Timeout:    cfg.MQTT.Timeout,
	})
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	ticks, err := engine.TimePerSecond(cfg.FPS, engine.NewMonotonicTimeProvider())
	if err != nil {
		return err
	}
	cue, stopCue := startCue(cfg)
	defer stopCue()

	metrics := status.NewRegistry()
	loop := &player.Loop{
		Target:     strip,
		Background: bg,
		Interval:   cfg.RenderInterval(),
		Drawables:  []player.Drawable{drawable(cfg, frames, ticks, cue)},
		Metrics:    metrics,
		MaxFrames:  cfg.MaxFrames,
	}

	log.Printf("stream: %d pixels to %s on %s", cfg.MQTT.Pixels, cfg.MQTT.Topic, cfg.MQTT.URL)
	err = loop.Run(ctx)
	fmt.Println(metrics.Format())
	return err
}

// apply copies flag overrides into cfg and stretches the shape over the strip
func (c *StreamCmd) apply(cfg *config.Config) {
	if c.Broker != "" {
		cfg.MQTT.URL = c.Broker
	}
	if c.Topic != "" {
		cfg.MQTT.Topic = c.Topic
	}
	if c.Pixels > 0 {
		cfg.MQTT.Pixels = c.Pixels
	}
	cfg.Circle = false
	cfg.Shape = config.ShapeConfig{W: float64(cfg.MQTT.Pixels), H: 1}
}

func connect(m config.MQTTConfig) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(m.URL).
		SetClientID(m.ClientID).
		SetUsername(m.Username).
		SetPassword(m.Password).
		SetAutoReconnect(true).
		SetConnectTimeout(m.Timeout).
		SetOnConnectHandler(func(mqtt.Client) {
			log.Printf("stream: connected to %s", m.URL)
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Printf("stream: connection lost: %v", err)
		})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !waitToken(token, m.Timeout) {
		return nil, fmt.Errorf("connect to %s: timed out after %v", m.URL, m.Timeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", m.URL, err)
	}
	return client, nil
}

func waitToken(t mqtt.Token, timeout time.Duration) bool {
	if timeout <= 0 {
		return t.Wait()
	}
	return t.WaitTimeout(timeout)
}
