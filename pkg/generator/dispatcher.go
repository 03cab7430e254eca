package generator

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"google.golang.org/genai"
)

// GenAIDispatcher は google.golang.org/genai を直接使ってリクエストを送信します。
type GenAIDispatcher struct {
	models *genai.Models
}

// GenAIOptions は GenAIDispatcher を生成する際の任意設定です。
type GenAIOptions struct {
	// HTTPClient は通信に使う http.Client です。nil の場合は genai の既定値を使います。
	HTTPClient *http.Client
	// BaseURL は接続先のエンドポイントです。空の場合は既定のエンドポイントを使います。
	BaseURL string
}

// NewGenAIDispatcher は API キーを使って genai クライアントを初期化します。
func NewGenAIDispatcher(ctx context.Context, apiKey string, opts GenAIOptions) (*GenAIDispatcher, error) {
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("genaiクライアントの初期化に失敗しました: %w", err)
	}
	return &GenAIDispatcher{models: client.Models}, nil
}

// NewGenAIDispatcherFactory はリクエストごとに GenAIDispatcher を生成するファクトリを返します。
func NewGenAIDispatcherFactory(opts GenAIOptions) DispatcherFactory {
	return func(ctx context.Context, apiKey string) (Dispatcher, error) {
		return NewGenAIDispatcher(ctx, apiKey, opts)
	}
}

// Dispatch は単一のユーザーコンテンツとして parts を送信し、画像のみの応答を要求します。
func (d *GenAIDispatcher) Dispatch(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityImage)},
	}

	slog.DebugContext(ctx, "Gemini へリクエストを送信します", "model", model, "parts", len(parts))
	resp, err := d.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("GenerateContent の呼び出しに失敗しました: %w", err)
	}
	return resp, nil
}
