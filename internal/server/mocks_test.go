package server

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/imgutil"
)

// --- Mocks ---

// mockLoader は data URL だけを受け付けるローダーです。
type mockLoader struct{}

func (m *mockLoader) Load(ctx context.Context, uri string) (*domain.ImageResource, error) {
	mimeType, data, err := imgutil.DecodeDataURL(uri)
	if err != nil {
		return nil, &domain.EncodingError{Op: "decode data url", Err: err}
	}
	return &domain.ImageResource{Name: "inline", MimeType: mimeType, Data: data}, nil
}

type mockEditor struct {
	lastReq domain.EditRequest
	err     error
}

func (m *mockEditor) EditImage(ctx context.Context, img domain.ImageResource, prompt string, hotspot domain.Hotspot) (*domain.ImageResponse, error) {
	return m.Execute(ctx, domain.EditRequest{Mode: domain.ModeEdit, Image: img, Prompt: prompt, Hotspot: &hotspot})
}

func (m *mockEditor) ApplyFilter(ctx context.Context, img domain.ImageResource, prompt string) (*domain.ImageResponse, error) {
	return m.Execute(ctx, domain.EditRequest{Mode: domain.ModeFilter, Image: img, Prompt: prompt})
}

func (m *mockEditor) ApplyAdjustment(ctx context.Context, img domain.ImageResource, prompt string) (*domain.ImageResponse, error) {
	return m.Execute(ctx, domain.EditRequest{Mode: domain.ModeAdjustment, Image: img, Prompt: prompt})
}

func (m *mockEditor) Execute(ctx context.Context, req domain.EditRequest) (*domain.ImageResponse, error) {
	m.lastReq = req
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ImageResponse{Data: []byte("edited"), MimeType: "image/png"}, nil
}

var errTransport = errors.New("dial tcp: i/o timeout")

// recordingReader は Open の呼び出し回数を数える InputReader です。
type recordingReader struct {
	data  []byte
	opens int
}

func (r *recordingReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	r.opens++
	return io.NopCloser(bytes.NewReader(r.data)), nil
}

type stubHTTPClient struct {
	data []byte
}

func (c *stubHTTPClient) IsSafeURL(url string) (bool, error) {
	return true, nil
}

func (c *stubHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return c.data, nil
}
