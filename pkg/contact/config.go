package contact

import "time"

// DefaultDeliveryTimeout bounds a notification send when Config leaves it unset.
const DefaultDeliveryTimeout = 10 * time.Second

// Config holds contact workflow configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// Recipient receives every submission notification.
	Recipient string `env:"CONTACT_RECIPIENT" envDefault:"contact@techtonic.tn"`
	// From overrides the sender's default From address when set.
	From string `env:"CONTACT_FROM"`
	// Archive, when set, gets a blind copy of every notification.
	Archive string `env:"CONTACT_ARCHIVE"`
	// DeliveryTimeout caps a single send. Keep it below the request timeout.
	DeliveryTimeout time.Duration `env:"CONTACT_DELIVERY_TIMEOUT" envDefault:"10s"`
}

func (c Config) deliveryTimeout() time.Duration {
	if c.DeliveryTimeout > 0 {
		return c.DeliveryTimeout
	}
	return DefaultDeliveryTimeout
}
