package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"financing-agent/domain"
)

type RateLimitConfig struct {
	Capacity int
	Refill   time.Duration
}

type Config struct {
	HTTPAddr     string
	LogLevel     string
	RedisAddr    string
	CacheTTL     time.Duration
	OpenAIKey    string
	OpenAIURL    string
	RateLimit    RateLimitConfig
	AgentFile    string
	TrainingSize int
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		CacheTTL:  getEnvDuration("CACHE_TTL", 24*time.Hour),
		OpenAIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIURL: getEnv("OPENAI_API_URL", ""),
		RateLimit: RateLimitConfig{
			Capacity: getEnvInt("RATE_LIMIT_CAPACITY", 5),
			Refill:   getEnvDuration("RATE_LIMIT_REFILL", time.Minute),
		},
		AgentFile:    getEnv("AGENT_CONFIG", ""),
		TrainingSize: getEnvInt("TRAINING_SIZE", 6),
	}
}

// agentFile mirrors the YAML agent definition. Weights is a pointer so a
// missing block falls back to the defaults.
type agentFile struct {
	AgentID           string          `yaml:"agentId"`
	Name              string          `yaml:"name"`
	ModelType         string          `yaml:"modelType"`
	DecisionThreshold float64         `yaml:"decisionThreshold"`
	LearningRate      float64         `yaml:"learningRate"`
	Weights           *domain.Weights `yaml:"weights"`
}

// DefaultAgentConfig is used when no agent file is given.
func DefaultAgentConfig() domain.AgentConfig {
	return domain.AgentConfig{
		Name:              "FinancingAgent",
		ModelType:         domain.ModelRuleBased,
		DecisionThreshold: 0.7,
		Weights:           domain.DefaultWeights(),
	}
}

// LoadAgentConfig reads an agent definition from a YAML file. An empty path
// returns DefaultAgentConfig.
func LoadAgentConfig(path string) (domain.AgentConfig, error) {
	if path == "" {
		return DefaultAgentConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.AgentConfig{}, errors.Wrapf(err, "read agent config %s", path)
	}
	return ParseAgentConfig(data)
}

func ParseAgentConfig(data []byte) (domain.AgentConfig, error) {
	var f agentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.AgentConfig{}, errors.Wrap(err, "parse agent config")
	}

	cfg := DefaultAgentConfig()
	if f.AgentID != "" {
		cfg.AgentID = f.AgentID
	}
	if f.Name != "" {
		cfg.Name = f.Name
	}
	if f.ModelType != "" {
		switch f.ModelType {
		case domain.ModelRuleBased, domain.ModelMLBased, domain.ModelHybrid:
			cfg.ModelType = f.ModelType
		default:
			return domain.AgentConfig{}, errors.Errorf("unknown modelType %q", f.ModelType)
		}
	}
	if f.DecisionThreshold != 0 {
		cfg.DecisionThreshold = f.DecisionThreshold
	}
	cfg.LearningRate = f.LearningRate
	if f.Weights != nil {
		cfg.Weights = *f.Weights
	}
	return cfg, nil
}

// NewLogger builds a production zap logger at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
