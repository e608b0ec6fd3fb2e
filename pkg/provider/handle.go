package provider

import (
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// ClientHandle wraps a vendor SDK client together with the settings it was
// created with. The embedding system treats Client as opaque and asserts it
// to the concrete SDK type it expects.
type ClientHandle struct {
	// InstanceID uniquely identifies this handle for logging and metrics.
	InstanceID string

	// Provider is the identifier of the provider that built the handle.
	Provider string

	// Model is the resolved model identifier.
	Model string

	// Temperature the client was configured with.
	Temperature float32

	// Client is the vendor SDK client object.
	Client any

	// Limiter paces outgoing requests client-side. Nil when the
	// configuration requested no pacing.
	Limiter *rate.Limiter
}

// NewClientHandle builds a handle for the given vendor client. When the
// configuration carries a "requests_per_minute" option, the handle gets a
// token-bucket limiter with an optional "burst" size (default 1).
func NewClientHandle(providerName string, cfg Config, client any) *ClientHandle {
	h := &ClientHandle{
		InstanceID:  uuid.NewString(),
		Provider:    providerName,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		Client:      client,
	}

	if rpm := cfg.IntOption("requests_per_minute"); rpm > 0 {
		burst := cfg.IntOption("burst")
		if burst <= 0 {
			burst = 1
		}
		h.Limiter = rate.NewLimiter(rate.Limit(float64(rpm))/60.0, burst)
	}

	return h
}
