package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be within [1,65535] (got %d)", c.Server.Port)
	}
	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must not exceed max_conns (%d > %d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Redis.URL != "" && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be > 0 when the cache is enabled (got %v)", c.Redis.TTL)
	}
	if c.Pipeline.MaxConcurrentReads < 0 {
		return fmt.Errorf("pipeline.max_concurrent_reads must be >= 0 (got %d)", c.Pipeline.MaxConcurrentReads)
	}
	if c.Pipeline.MaxUploadBytes < 1 {
		return fmt.Errorf("pipeline.max_upload_bytes must be >= 1 (got %d)", c.Pipeline.MaxUploadBytes)
	}
	return nil
}
