package builder

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/shouni/gemini-photo-kit/internal/config"
	kitconfig "github.com/shouni/gemini-photo-kit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	data []byte
}

func (s *stubReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

func TestDispatcherFactory(t *testing.T) {
	t.Run("既知のバックエンドはファクトリを返す", func(t *testing.T) {
		for _, backend := range append([]string{""}, Backends...) {
			f, err := DispatcherFactory(backend)
			require.NoError(t, err, backend)
			assert.NotNil(t, f)
		}
	})

	t.Run("不明なバックエンドはエラー", func(t *testing.T) {
		for _, backend := range []string{"vertex", "client"} {
			_, err := DispatcherFactory(backend)
			assert.ErrorContains(t, err, backend)
		}
	})
}

func TestBuildEditor(t *testing.T) {
	t.Run("デフォルト設定で組み立てられる", func(t *testing.T) {
		cfg := &config.Config{Kit: kitconfig.DefaultConfig()}
		editor, err := BuildEditor(cfg)
		require.NoError(t, err)
		assert.NotNil(t, editor)
	})

	t.Run("不明なバックエンドはエラー", func(t *testing.T) {
		kit := kitconfig.DefaultConfig()
		kit.Backend = "unknown"
		_, err := BuildEditor(&config.Config{Kit: kit})
		assert.Error(t, err)
	})
}

func TestBuildSourceLoader(t *testing.T) {
	gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
	loader, err := BuildSourceLoader(kitconfig.DefaultConfig(), &stubReader{data: gif})
	require.NoError(t, err)

	res, err := loader.Load(context.Background(), "local/pixel.gif")
	require.NoError(t, err)
	assert.Equal(t, "image/gif", res.MimeType)
	assert.Equal(t, "pixel.gif", res.Name)
}
