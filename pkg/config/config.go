package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env             string
	Port            int
	ShutdownTimeout time.Duration

	Mongo      MongoConfig
	Redis      RedisConfig
	TableCache TableCacheConfig
	CORS       CORSConfig
	Log        LogConfig
	Render     RenderConfig
	PDF        PDFConfig
}

// MongoConfig describes the document store holding the progress card tables.
type MongoConfig struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
	MinPoolSize    uint64
	MaxIdleTime    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// TableCacheConfig toggles the read-through table cache. The cache is off by default so
// every request reads the store.
type TableCacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// RenderConfig locates HTML templates and optional static assets.
type RenderConfig struct {
	TemplateDir string
	StaticDir   string
}

// PDFConfig controls the scratch directory used while producing PDF downloads.
type PDFConfig struct {
	ScratchDir string
	ScratchTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.ShutdownTimeout = parseDuration(v.GetString("SHUTDOWN_TIMEOUT"), 10*time.Second)

	cfg.Mongo = MongoConfig{
		URI:            v.GetString("MONGO_URI"),
		Database:       v.GetString("MONGO_DATABASE"),
		Collection:     v.GetString("MONGO_COLLECTION"),
		ConnectTimeout: parseDuration(v.GetString("MONGO_CONNECT_TIMEOUT"), 20*time.Second),
		MaxPoolSize:    v.GetUint64("MONGO_MAX_POOL_SIZE"),
		MinPoolSize:    v.GetUint64("MONGO_MIN_POOL_SIZE"),
		MaxIdleTime:    parseDuration(v.GetString("MONGO_MAX_IDLE_TIME"), 30*time.Second),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.TableCache = TableCacheConfig{
		Enabled: v.GetBool("ENABLE_TABLE_CACHE"),
		TTL:     parseDuration(v.GetString("TABLE_CACHE_TTL"), 5*time.Minute),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Render = RenderConfig{
		TemplateDir: v.GetString("TEMPLATE_DIR"),
		StaticDir:   v.GetString("STATIC_DIR"),
	}

	scratchDir := v.GetString("PDF_SCRATCH_DIR")
	if scratchDir == "" {
		scratchDir = filepath.Join(os.TempDir(), "progresscard")
	}
	cfg.PDF = PDFConfig{
		ScratchDir: scratchDir,
		ScratchTTL: parseDuration(v.GetString("PDF_SCRATCH_TTL"), time.Hour),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3000)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "local")
	v.SetDefault("MONGO_COLLECTION", "progresscard")
	v.SetDefault("MONGO_CONNECT_TIMEOUT", "20s")
	v.SetDefault("MONGO_MAX_POOL_SIZE", 50)
	v.SetDefault("MONGO_MIN_POOL_SIZE", 0)
	v.SetDefault("MONGO_MAX_IDLE_TIME", "30s")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ENABLE_TABLE_CACHE", false)
	v.SetDefault("TABLE_CACHE_TTL", "5m")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("TEMPLATE_DIR", "")
	v.SetDefault("STATIC_DIR", "")

	v.SetDefault("PDF_SCRATCH_DIR", "")
	v.SetDefault("PDF_SCRATCH_TTL", "1h")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
