package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrPublishTimeout is returned when the broker does not acknowledge a frame in time
var ErrPublishTimeout = errors.New("render: publish timed out")

// Publisher is the part of mqtt.Client the strip needs
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// StripOptions configures frame publishing
type StripOptions struct {
	Topic string
	QoS   byte
	// Brightness scales every pixel, 0 is treated as full brightness
	Brightness float64
	// Timeout bounds the wait for the publish token, 0 waits indefinitely
	Timeout time.Duration
}

// Strip renders into a single row of LED pixels and publishes each frame over MQTT
// Payload: uint16 little-endian pixel count followed by RGB triples
type Strip struct {
	*Canvas
	pub  Publisher
	opts StripOptions
}

// NewStrip creates a strip target of the given length, capped at 65535 pixels
func NewStrip(pixels int, pub Publisher, opts StripOptions) *Strip {
	if opts.Brightness <= 0 || opts.Brightness > 1 {
		opts.Brightness = 1
	}
	return &Strip{
		Canvas: NewCanvas(min(pixels, math.MaxUint16), 1),
		pub:    pub,
		opts:   opts,
	}
}

// MarshalBinary encodes the current row as a strip frame
func (s *Strip) MarshalBinary() ([]byte, error) {
	img := s.Image()
	n := img.Bounds().Dx()

	data := make([]byte, 2, 2+n*3)
	binary.LittleEndian.PutUint16(data, uint16(n))
	for x := 0; x < n; x++ {
		c, ok := colorful.MakeColor(img.RGBAAt(x, 0))
		if !ok {
			c = colorful.Color{}
		}
		if s.opts.Brightness < 1 {
			c = colorful.Color{}.BlendRgb(c, s.opts.Brightness)
		}
		r, g, b := c.Clamped().RGB255()
		data = append(data, r, g, b)
	}
	return data, nil
}

// Present publishes the current row and waits for the broker token
func (s *Strip) Present() error {
	payload, err := s.MarshalBinary()
	if err != nil {
		return err
	}

	token := s.pub.Publish(s.opts.Topic, s.opts.QoS, false, payload)
	if s.opts.Timeout > 0 {
		if !token.WaitTimeout(s.opts.Timeout) {
			return fmt.Errorf("%w: topic %s", ErrPublishTimeout, s.opts.Topic)
		}
	} else {
		token.Wait()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", s.opts.Topic, err)
	}
	return nil
}

var _ Target = (*Strip)(nil)
