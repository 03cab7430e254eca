package generator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/imgutil"
)

// SourceCore は編集元画像の取得とキャッシュを担う基盤クラスです。
// data URL はそのまま展開し、http(s) は HTTPClient、それ以外（gs://, ローカルパス）は InputReader で読み込みます。
type SourceCore struct {
	reader     InputReader
	httpClient HTTPClient
	cache      ImageCacher
	expiration time.Duration

	compressThreshold int
	jpegQuality       int
}

// SourceOption は SourceCore の任意設定です。
type SourceOption func(*SourceCore)

// WithCompression は threshold バイトを超える元画像を JPEG に再エンコードします。
func WithCompression(threshold, quality int) SourceOption {
	return func(c *SourceCore) {
		c.compressThreshold = threshold
		c.jpegQuality = quality
	}
}

// NewSourceCore は依存関係を注入して SourceCore を初期化します。
func NewSourceCore(reader InputReader, httpClient HTTPClient, cache ImageCacher, cacheTTL time.Duration, opts ...SourceOption) (*SourceCore, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	// cache は nil を許容（キャッシュなし動作）

	c := &SourceCore{
		reader:     reader,
		httpClient: httpClient,
		cache:      cache,
		expiration: cacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Load は参照先から画像を読み込み、ImageResource を返します。
// 画像として認識できないデータは *domain.EncodingError になります。
func (c *SourceCore) Load(ctx context.Context, uri string) (*domain.ImageResource, error) {
	if uri == "" {
		return nil, &domain.EncodingError{Op: "load", Err: fmt.Errorf("画像の参照先が空です")}
	}

	if imgutil.IsDataURL(uri) {
		mimeType, data, err := imgutil.DecodeDataURL(uri)
		if err != nil {
			return nil, &domain.EncodingError{Op: "decode data url", Err: err}
		}
		return &domain.ImageResource{Name: "inline", MimeType: mimeType, Data: data}, nil
	}

	if c.cache != nil {
		if val, ok := c.cache.Get(cacheKeySource + uri); ok {
			if res, ok := val.(*domain.ImageResource); ok {
				slog.DebugContext(ctx, "キャッシュから画像を取得しました", "uri", uri)
				return res, nil
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "uri", uri, "type", fmt.Sprintf("%T", val))
		}
	}

	data, err := c.fetchImageData(ctx, uri)
	if err != nil {
		return nil, &domain.EncodingError{Op: "read", Err: err}
	}

	data, err = c.maybeCompress(ctx, uri, data)
	if err != nil {
		return nil, &domain.EncodingError{Op: "compress", Err: err}
	}

	mimeType, err := detectImageMimeType(data)
	if err != nil {
		return nil, &domain.EncodingError{Op: "detect mime type", Err: err}
	}

	res := &domain.ImageResource{Name: filepath.Base(uri), MimeType: mimeType, Data: data}
	if c.cache != nil {
		c.cache.Set(cacheKeySource+uri, res, c.expiration)
	}
	return res, nil
}

func (c *SourceCore) maybeCompress(ctx context.Context, uri string, data []byte) ([]byte, error) {
	out, compressed, err := imgutil.CompressIfLarger(data, c.compressThreshold, c.jpegQuality)
	if err != nil {
		return nil, err
	}
	if compressed {
		slog.InfoContext(ctx, "元画像をJPEGに再エンコードしました", "uri", uri, "before", len(data), "after", len(out))
	}
	return out, nil
}
