package config

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	kitconfig "github.com/shouni/gemini-photo-kit/pkg/config"
	"github.com/shouni/go-utils/envutil"
)

// 環境変数名の定義
const (
	EnvAPIKey            = "GEMINI_API_KEY"
	EnvImageModel        = "GEMINI_IMAGE_MODEL"
	EnvBackend           = "PHOTO_KIT_BACKEND"
	EnvListenAddr        = "PHOTO_KIT_ADDR"
	EnvHTTPTimeout       = "PHOTO_KIT_HTTP_TIMEOUT"
	EnvCompressThreshold = "PHOTO_KIT_COMPRESS_THRESHOLD"
	EnvConcurrency       = "PHOTO_KIT_CONCURRENCY"
	EnvRateInterval      = "PHOTO_KIT_RATE_INTERVAL"
	EnvLogLevel          = "PHOTO_KIT_LOG_LEVEL"
)

// Config はアプリケーション全体の環境設定（APIキーやログレベル）を保持する構造体です。
// CLI フラグの値は EditOptions として cmd 側で直接扱います。
type Config struct {
	GeminiAPIKey string
	LogLevel     slog.Level
	Kit          kitconfig.Config
}

// EditOptions は CLI フラグから渡される実行時のパラメータです。
type EditOptions struct {
	Inputs    []string // --input
	Prompt    string   // --prompt
	X         float64  // --x
	Y         float64  // --y
	Output    string   // --output
	OutputDir string   // --output-dir (batch)
	Mode      string   // --mode (batch)
}

// LoadConfig は .env と環境変数から設定を読み込みます。.env が無くてもエラーにしません。
func LoadConfig() *Config {
	_ = godotenv.Load()

	kit := kitconfig.DefaultConfig()
	kit.ImageModel = envutil.GetEnv(EnvImageModel, kit.ImageModel)
	kit.Backend = strings.ToLower(envutil.GetEnv(EnvBackend, kit.Backend))
	kit.ListenAddr = envutil.GetEnv(EnvListenAddr, kit.ListenAddr)
	kit.HTTPTimeout = durationEnv(EnvHTTPTimeout, kit.HTTPTimeout)
	kit.CompressThreshold = intEnv(EnvCompressThreshold, kit.CompressThreshold)
	kit.Concurrency = intEnv(EnvConcurrency, kit.Concurrency)
	kit.RateInterval = durationEnv(EnvRateInterval, kit.RateInterval)

	return &Config{
		GeminiAPIKey: envutil.GetEnv(EnvAPIKey, ""),
		LogLevel:     levelEnv(EnvLogLevel, slog.LevelInfo),
		Kit:          kit,
	}
}

func intEnv(key string, def int) int {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("環境変数を整数として解釈できません。デフォルト値を使います", "key", key, "value", raw, "default", def)
		return def
	}
	return v
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("環境変数を時間として解釈できません。デフォルト値を使います", "key", key, "value", raw, "default", def)
		return def
	}
	return v
}

func levelEnv(key string, def slog.Level) slog.Level {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		slog.Warn("ログレベルを解釈できません", "key", key, "value", raw)
		return def
	}
	return level
}
