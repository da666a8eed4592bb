package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/pocketr")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/pocketr", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, EventsDriverNone, cfg.EventsDriver)
	assert.Equal(t, []string{"ASSET"}, cfg.CrossUserAccountTypes)
	assert.Equal(t, 3660, cfg.ReportMaxTimeseriesDays)
	assert.True(t, cfg.SeedCurrencies)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("EVENTS_DRIVER", " Kafka ")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("LEDGER_CROSS_USER_ACCOUNT_TYPES", "ASSET,LIABILITY")
	t.Setenv("REPORT_MAX_TIMESERIES_DAYS", "366")
	t.Setenv("JWT_EXPIRY_DURATION", "15m")
	t.Setenv("SEED_CURRENCIES", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, EventsDriverKafka, cfg.EventsDriver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Len(t, cfg.CORSAllowedOrigins, 2)
	assert.Equal(t, []string{"ASSET", "LIABILITY"}, cfg.CrossUserAccountTypes)
	assert.Equal(t, 366, cfg.ReportMaxTimeseriesDays)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.False(t, cfg.SeedCurrencies)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("EVENTS_DRIVER", "carrier-pigeon")
	t.Setenv("REPORT_MAX_TIMESERIES_DAYS", "-5")
	t.Setenv("JWT_EXPIRY_DURATION", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EventsDriverNone, cfg.EventsDriver)
	assert.Equal(t, 3660, cfg.ReportMaxTimeseriesDays)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}
