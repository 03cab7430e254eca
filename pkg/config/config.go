package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultImageModel        = "gemini-2.5-flash-image"
	DefaultBackend           = BackendGenAI
	DefaultHTTPTimeout       = 30 * time.Second
	DefaultCacheExpiration   = 30 * time.Minute
	DefaultCacheCleanup      = 1 * time.Hour
	DefaultCompressThreshold = 0 // 0 は再エンコードしない
	DefaultJPEGQuality       = 90
	DefaultRateInterval      = 2 * time.Second
	DefaultRateBurst         = 2
	DefaultConcurrency       = 4
	DefaultListenAddr        = ":8080"
	DefaultMaxBodyBytes      = 32 << 20
)

// MaxMaskPixels はマスク用キャンバスに確保できる width*height の上限です。
// 8K (7680x4320) が収まり、RGBA で約 160MB に抑えられる値です。
const MaxMaskPixels = 40_000_000

// BackendGenAI は google.golang.org/genai を直接使う送信バックエンドです。
const BackendGenAI = "genai"

// Config は photo kit の各コンポーネントを動かすための基本設定です。
type Config struct {
	// --- AI Model Settings ---
	ImageModel string
	Backend    string

	// --- Source Loading ---
	HTTPTimeout       time.Duration
	CacheExpiration   time.Duration
	CacheCleanup      time.Duration
	CompressThreshold int // このバイト数を超える元画像を JPEG に再エンコードする
	JPEGQuality       int

	// --- Batch Settings ---
	RateInterval time.Duration
	RateBurst    int
	Concurrency  int

	// --- HTTP API ---
	ListenAddr   string
	MaxBodyBytes int64
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		ImageModel:        DefaultImageModel,
		Backend:           DefaultBackend,
		HTTPTimeout:       DefaultHTTPTimeout,
		CacheExpiration:   DefaultCacheExpiration,
		CacheCleanup:      DefaultCacheCleanup,
		CompressThreshold: DefaultCompressThreshold,
		JPEGQuality:       DefaultJPEGQuality,
		RateInterval:      DefaultRateInterval,
		RateBurst:         DefaultRateBurst,
		Concurrency:       DefaultConcurrency,
		ListenAddr:        DefaultListenAddr,
		MaxBodyBytes:      DefaultMaxBodyBytes,
	}
}
