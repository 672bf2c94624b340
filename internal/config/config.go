package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type ServerConfig struct {
	Port    int    `yaml:"port"`
	BaseURL string `yaml:"base_url"` // public origin used to build audio URLs
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type StorageConfig struct {
	// Backend selects the session store: "postgres" persists every step
	// durably, "memory" keeps sessions in process (lost on restart).
	Backend string `yaml:"backend"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type RedisConfig struct {
	URL      string        `yaml:"url"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type AIConfig struct {
	GroqKey         string        `yaml:"groq_key"`
	GroqBaseURL     string        `yaml:"groq_base_url"`
	GeminiKey       string        `yaml:"gemini_key"`
	Model           string        `yaml:"model"`
	Timeout         time.Duration `yaml:"timeout"`
	ConcurrentLimit int           `yaml:"concurrent_limit"` // max concurrent AI calls

	Breaker BreakerConfig `yaml:"breaker"`
}

type BreakerConfig struct {
	Enabled          bool          `yaml:"enabled"`
	MaxRequests      uint32        `yaml:"max_requests"`
	Interval         time.Duration `yaml:"interval"`
	Timeout          time.Duration `yaml:"timeout"`
	MinRequests      uint32        `yaml:"min_requests"`
	FailureThreshold float64       `yaml:"failure_threshold"`
}

type TTSConfig struct {
	Enabled  bool          `yaml:"enabled"`
	APIKey   string        `yaml:"api_key"`
	Voice    string        `yaml:"voice"`
	Language string        `yaml:"language"`
	Timeout  time.Duration `yaml:"timeout"`
}

type AudioConfig struct {
	Backend string `yaml:"backend"` // local | s3
	Dir     string `yaml:"dir"`     // local backend

	S3 S3Config `yaml:"s3"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"` // optional, for S3-compatible stores
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	PublicURL string `yaml:"public_url"` // prefix for returned object URLs
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	AI       AIConfig       `yaml:"ai"`
	TTS      TTSConfig      `yaml:"tts"`
	Audio    AudioConfig    `yaml:"audio"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig(path string, dev bool) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "postgres"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "llama-3.1-70b-versatile"
	}
	if cfg.AI.GroqBaseURL == "" {
		cfg.AI.GroqBaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.AI.Timeout <= 0 {
		cfg.AI.Timeout = 30 * time.Second
	}
	if cfg.AI.ConcurrentLimit <= 0 {
		cfg.AI.ConcurrentLimit = 16
	}
	if cfg.AI.Breaker.MaxRequests == 0 {
		cfg.AI.Breaker.MaxRequests = 3
	}
	if cfg.AI.Breaker.Interval <= 0 {
		cfg.AI.Breaker.Interval = time.Minute
	}
	if cfg.AI.Breaker.Timeout <= 0 {
		cfg.AI.Breaker.Timeout = 30 * time.Second
	}
	if cfg.AI.Breaker.MinRequests == 0 {
		cfg.AI.Breaker.MinRequests = 5
	}
	if cfg.AI.Breaker.FailureThreshold <= 0 {
		cfg.AI.Breaker.FailureThreshold = 0.6
	}
	if cfg.TTS.Voice == "" {
		cfg.TTS.Voice = "en-US-Wavenet-H"
	}
	if cfg.TTS.Language == "" {
		cfg.TTS.Language = "en-US"
	}
	if cfg.TTS.Timeout <= 0 {
		cfg.TTS.Timeout = 20 * time.Second
	}
	if cfg.Audio.Backend == "" {
		cfg.Audio.Backend = "local"
	}
	if cfg.Audio.Dir == "" {
		cfg.Audio.Dir = "media/audio_files"
	}
	cfg.Redis.TTL = normalizeTTL(cfg.Redis.TTL)

	// Minimal validation
	switch cfg.Storage.Backend {
	case "postgres":
		if cfg.Database.URL == "" {
			return nil, errors.New("database.url is required with storage.backend=postgres")
		}
		if cfg.Redis.URL == "" {
			return nil, errors.New("redis.url is required with storage.backend=postgres")
		}
	case "memory":
		// no external stores required
	default:
		return nil, fmt.Errorf("unknown storage.backend %q", cfg.Storage.Backend)
	}
	if cfg.Audio.Backend == "s3" && cfg.Audio.S3.Bucket == "" {
		return nil, errors.New("audio.s3.bucket is required with audio.backend=s3")
	}
	if cfg.TTS.Enabled && cfg.TTS.APIKey == "" {
		return nil, errors.New("tts.api_key is required when tts.enabled")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}

func normalizeTTL(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Hour
	}
	return d
}
