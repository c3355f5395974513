package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"financing-agent/domain"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "REDIS_ADDR", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_REFILL", "TRAINING_SIZE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 5, cfg.RateLimit.Capacity)
	assert.Equal(t, time.Minute, cfg.RateLimit.Refill)
	assert.Equal(t, 6, cfg.TrainingSize)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_LIMIT_CAPACITY", "50")
	t.Setenv("RATE_LIMIT_REFILL", "30s")
	t.Setenv("CACHE_TTL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 50, cfg.RateLimit.Capacity)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Refill)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
}

func TestParseAgentConfig(t *testing.T) {
	cfg, err := ParseAgentConfig([]byte(`
agentId: agent-prod
name: CostFocused
modelType: hybrid
decisionThreshold: 0.8
weights:
  totalCostWeight: 0.5
  monthlyPaymentWeight: 0.2
  customerPreferenceWeight: 0.1
  creditScoreWeight: 0.1
  termLengthWeight: 0.1
`))
	require.NoError(t, err)

	assert.Equal(t, "agent-prod", cfg.AgentID)
	assert.Equal(t, "CostFocused", cfg.Name)
	assert.Equal(t, domain.ModelHybrid, cfg.ModelType)
	assert.Equal(t, 0.8, cfg.DecisionThreshold)
	assert.Equal(t, 0.5, cfg.Weights.TotalCost)
	assert.Equal(t, 0.2, cfg.Weights.MonthlyPayment)
}

func TestParseAgentConfig_DefaultsWhenMissing(t *testing.T) {
	cfg, err := ParseAgentConfig([]byte("name: Minimal\n"))
	require.NoError(t, err)

	assert.Equal(t, "Minimal", cfg.Name)
	assert.Equal(t, domain.ModelRuleBased, cfg.ModelType)
	assert.Equal(t, domain.DefaultWeights(), cfg.Weights)
	assert.Equal(t, 0.7, cfg.DecisionThreshold)
}

func TestParseAgentConfig_Errors(t *testing.T) {
	_, err := ParseAgentConfig([]byte("modelType: neural\n"))
	assert.Error(t, err)

	_, err = ParseAgentConfig([]byte("weights: [1, 2"))
	assert.Error(t, err)
}

func TestLoadAgentConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: FromFile\n"), 0o600))

	cfg, err := LoadAgentConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "FromFile", cfg.Name)

	cfg, err = LoadAgentConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAgentConfig(), cfg)

	_, err = LoadAgentConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("nonsense")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
