package runner

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

// --- Mocks ---

type mockLoader struct {
	images map[string]*domain.ImageResource
}

func (m *mockLoader) Load(ctx context.Context, uri string) (*domain.ImageResource, error) {
	img, ok := m.images[uri]
	if !ok {
		return nil, &domain.EncodingError{Op: "read", Err: errors.New("not found: " + uri)}
	}
	return img, nil
}

type mockEditor struct {
	mu       sync.Mutex
	requests []domain.EditRequest
	execFunc func(req domain.EditRequest) (*domain.ImageResponse, error)
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
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.execFunc != nil {
		return m.execFunc(req)
	}
	return &domain.ImageResponse{Data: req.Image.Data, MimeType: "image/png"}, nil
}

type mockWriter struct {
	written map[string][]byte
	types   map[string]string
	err     error
}

func (m *mockWriter) Write(ctx context.Context, path string, r io.Reader, contentType string) error {
	if m.err != nil {
		return m.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.written[path] = data
	m.types[path] = contentType
	return nil
}
