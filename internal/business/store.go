package business

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// configKey holds the whole serialized profile. Persistence granularity is
// the entire object: every edit re-serializes and overwrites it.
const configKey = "bookme:business:config"

// Store persists the business profile as a single JSON blob in Redis.
type Store struct {
	redis              *redis.Client
	defaultCountryCode string
}

// NewStore creates a business config store. defaultCountryCode seeds the
// built-in profile returned before anything has been saved.
func NewStore(redisClient *redis.Client, defaultCountryCode string) *Store {
	return &Store{redis: redisClient, defaultCountryCode: defaultCountryCode}
}

// Get retrieves the business profile. A missing key or an unparseable blob
// both yield the default seed; stored JSON is not schema-validated beyond
// unmarshaling.
func (s *Store) Get(ctx context.Context) (*Config, error) {
	data, err := s.redis.Get(ctx, configKey).Bytes()
	if err == redis.Nil {
		return DefaultConfig(s.defaultCountryCode), nil
	}
	if err != nil {
		return nil, fmt.Errorf("business: get config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(s.defaultCountryCode), nil
	}
	if cfg.CountryCode == "" {
		cfg.CountryCode = s.defaultCountryCode
	}

	return &cfg, nil
}

// Set saves the business profile, overwriting the previous value.
func (s *Store) Set(ctx context.Context, cfg *Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("business: marshal config: %w", err)
	}

	if err := s.redis.Set(ctx, configKey, data, 0).Err(); err != nil {
		return fmt.Errorf("business: set config: %w", err)
	}

	return nil
}
