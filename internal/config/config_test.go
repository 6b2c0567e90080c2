package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("GEMINI_API_KEY", "test-gemini-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Providers.Primary.Type)
	assert.Equal(t, "test-gemini-key", cfg.Providers.Primary.APIKey)
	assert.Equal(t, "huggingface", cfg.Providers.Secondary.Type)
	assert.Equal(t, 10*time.Second, cfg.Providers.Secondary.Timeout)
	assert.Equal(t, 10, cfg.Pipeline.PrimaryChunkSize)
	assert.Equal(t, 5, cfg.Pipeline.SecondaryChunkSize)
	assert.Equal(t, 200, cfg.Pipeline.NotesMinLength)
	assert.Equal(t, 500, cfg.Pipeline.ComprehensiveNotesMinLength)
	require.Len(t, cfg.Warmup.Topics, 3)
	assert.Equal(t, "Mathematics", cfg.Warmup.Topics[0].Subject)
	assert.Equal(t, "4", cfg.Warmup.Topics[0].Grade)
}

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Pipeline.RequestTimeout)
	assert.Equal(t, 1, cfg.Pipeline.ChunkConcurrency)
	assert.Equal(t, 0.6, cfg.Pipeline.CalculationBias)
	assert.Equal(t, "stdout", cfg.Tracing.Exporter)
	assert.Empty(t, cfg.Warmup.Topics)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("pipeline.primary_chunk_size", 0)

	_, err := fromViper(v)
	assert.Error(t, err)

	v.Set("pipeline.primary_chunk_size", 8)
	t.Setenv("SERVER_PORT", "9000")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Pipeline.PrimaryChunkSize)
	assert.Equal(t, 9000, cfg.Server.Port)

	t.Setenv("SERVER_PORT", "not-a-port")
	_, err = fromViper(v)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{Pipeline: PipelineConfig{
			PrimaryChunkSize:   10,
			SecondaryChunkSize: 5,
			ChunkConcurrency:   1,
			CalculationBias:    0.6,
		}}
	}

	assert.NoError(t, base().Validate())

	c := base()
	c.Pipeline.ChunkConcurrency = 0
	assert.Error(t, c.Validate())

	c = base()
	c.Pipeline.CalculationBias = 1.5
	assert.Error(t, c.Validate())

	c = base()
	c.Pipeline.MaxVariations = -1
	assert.Error(t, c.Validate())
}

func TestParseTTLStringOrDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 24*time.Hour, cfg.ParseTTLStringOrDefault("24h", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("soon", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("-5s", time.Minute))
}
