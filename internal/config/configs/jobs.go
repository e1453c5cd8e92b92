package configs

import "time"

// Jobs sizes the in-process sync job runner.
type Jobs struct {
	Workers   int           `env:"WORKERS" envDefault:"4"`
	QueueSize int           `env:"QUEUE_SIZE" envDefault:"100"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"30m"`
	Retention time.Duration `env:"RETENTION" envDefault:"1h"`
	// SubscriberBuffer is the per-subscriber progress event buffer.
	SubscriberBuffer int `env:"SUBSCRIBER_BUFFER" envDefault:"64"`
}
