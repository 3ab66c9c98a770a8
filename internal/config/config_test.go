package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, 3*time.Second, cfg.Checkout.TrackingDelay)
	assert.Equal(t, "ar", cfg.DefaultLanguage)
	assert.False(t, cfg.Store.StrictIDs)

	require.NoError(t, cfg.Validate())
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("STORE_STRICT_IDS", "true")
	t.Setenv("CHECKOUT_TRACKING_DELAY", "500ms")
	t.Setenv("SLOT_CAPACITY", "12")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("SESSION_TTL", "not-a-duration")

	cfg := New()

	assert.Equal(t, "production", cfg.Env)
	assert.True(t, cfg.Store.StrictIDs)
	assert.Equal(t, 500*time.Millisecond, cfg.Checkout.TrackingDelay)
	assert.Equal(t, 12, cfg.Checkout.SlotCapacity)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, time.Hour, cfg.Checkout.SessionTTL)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{
			name:   "memory driver ignores empty postgres credentials",
			modify: func(c *Config) {},
		},
		{
			name: "postgres driver requires credentials",
			modify: func(c *Config) {
				c.StorageDriver = StoragePostgres
			},
			wantErr: true,
		},
		{
			name: "postgres driver with credentials",
			modify: func(c *Config) {
				c.StorageDriver = StoragePostgres
				c.Postgres.User = "pharmacy"
				c.Postgres.Password = "secret"
			},
		},
		{
			name: "enabled kafka validates brokers",
			modify: func(c *Config) {
				c.Kafka.Enabled = true
				c.Kafka.Brokers = []string{"not a broker"}
			},
			wantErr: true,
		},
		{
			name: "unknown storage driver",
			modify: func(c *Config) {
				c.StorageDriver = "redis"
			},
			wantErr: true,
		},
		{
			name: "unknown language",
			modify: func(c *Config) {
				c.DefaultLanguage = "fr"
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := New()
			tc.modify(&cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
