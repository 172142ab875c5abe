//go:build !gcloud

package config

// Validate accepts an empty NATS_URL; event publishing is then disabled.
func (c *PubSubConfig) Validate() error {
	return nil
}
