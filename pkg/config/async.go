package config

import "time"

// AsyncConfig configures the retry, timeout and worker settings used by
// batch runs.
type AsyncConfig struct {
	MaxRetries int           `yaml:"max_retries"`
	BaseDelay  time.Duration `yaml:"base_delay"`
	Timeout    time.Duration `yaml:"timeout"`
	Workers    int           `yaml:"workers"`
}

func defaultAsyncConfig() AsyncConfig {
	return AsyncConfig{
		MaxRetries: 2,
		BaseDelay:  100 * time.Millisecond,
		Timeout:    2 * time.Second,
		Workers:    4,
	}
}

func loadAsyncConfig(base AsyncConfig) AsyncConfig {
	return AsyncConfig{
		MaxRetries: getEnvInt("FORMKIT_RETRY_MAX", base.MaxRetries),
		BaseDelay:  getEnvDuration("FORMKIT_RETRY_BASE_DELAY", base.BaseDelay),
		Timeout:    getEnvDuration("FORMKIT_TIMEOUT", base.Timeout),
		Workers:    getEnvInt("FORMKIT_WORKERS", base.Workers),
	}
}

func (c AsyncConfig) validate() error {
	switch {
	case c.MaxRetries < 0:
		return invalid("async.max_retries", "max_retries must be >= 0, got %d", c.MaxRetries)
	case c.BaseDelay < 0:
		return invalid("async.base_delay", "base_delay must be >= 0, got %s", c.BaseDelay)
	case c.Timeout <= 0:
		return invalid("async.timeout", "timeout must be > 0, got %s", c.Timeout)
	case c.Workers <= 0:
		return invalid("async.workers", "workers must be > 0, got %d", c.Workers)
	}
	return nil
}
