package generator

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// --- Mocks ---

type mockDispatcher struct {
	resp      *genai.GenerateContentResponse
	err       error
	calls     int
	lastModel string
	lastParts []*genai.Part
}

func (m *mockDispatcher) Dispatch(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error) {
	m.calls++
	m.lastModel = model
	m.lastParts = parts
	return m.resp, m.err
}

// factory は常に同じモックを返す DispatcherFactory です。
func (m *mockDispatcher) factory() DispatcherFactory {
	return func(ctx context.Context, apiKey string) (Dispatcher, error) {
		return m, nil
	}
}

type mockReader struct {
	files map[string][]byte
	opens int
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	m.opens++
	data, ok := m.files[uri]
	if !ok {
		return nil, errors.New("file not found: " + uri)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

type mockHTTPClient struct {
	data   []byte
	err    error
	unsafe bool
	calls  int
}

func (m *mockHTTPClient) IsSafeURL(url string) (bool, error) {
	if m.unsafe {
		return false, errors.New("制限されたネットワークへのアクセスです: " + url)
	}
	return true, nil
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.calls++
	return m.data, m.err
}

type mockCache struct {
	data map[string]any
}

func (m *mockCache) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	m.data[key] = value
}

// --- Helpers ---

// newTestPNG は指定サイズの単色 PNG を生成します。
func newTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 180, B: 60, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// newNoisyPNG は圧縮の効きにくいランダムな画素の PNG を生成します。
func newNoisyPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256)), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// imageResponse は 1 枚の画像を含む応答を返します。
func imageResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}},
			},
			FinishReason: genai.FinishReasonStop,
		}},
	}
}
