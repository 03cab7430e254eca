package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shouni/gemini-photo-kit/pkg/credential"
	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/prompts"
	"google.golang.org/genai"
)

// GeminiEditor は局所編集、フィルター、補正の 3 モードを担当する統合エディターです。
// リクエストごとに API キーを解決し、Dispatcher を生成します。
type GeminiEditor struct {
	credentials   credential.Provider
	newDispatcher DispatcherFactory
	prompts       prompts.PromptBuilder
	model         string
}

// NewGeminiEditor は GeminiEditor を初期化します。
func NewGeminiEditor(
	credentials credential.Provider,
	newDispatcher DispatcherFactory,
	promptBuilder prompts.PromptBuilder,
	model string,
) (*GeminiEditor, error) {
	if credentials == nil {
		return nil, fmt.Errorf("credentials (credential.Provider) is required")
	}
	if newDispatcher == nil {
		return nil, fmt.Errorf("newDispatcher (DispatcherFactory) is required")
	}
	if promptBuilder == nil {
		return nil, fmt.Errorf("promptBuilder (prompts.PromptBuilder) is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	return &GeminiEditor{
		credentials:   credentials,
		newDispatcher: newDispatcher,
		prompts:       promptBuilder,
		model:         model,
	}, nil
}

// EditImage はホットスポット周辺だけを編集します。
func (e *GeminiEditor) EditImage(ctx context.Context, img domain.ImageResource, prompt string, hotspot domain.Hotspot) (*domain.ImageResponse, error) {
	return e.Execute(ctx, domain.EditRequest{Mode: domain.ModeEdit, Image: img, Prompt: prompt, Hotspot: &hotspot})
}

// ApplyFilter は構図を保ったままスタイルを適用します。
func (e *GeminiEditor) ApplyFilter(ctx context.Context, img domain.ImageResource, prompt string) (*domain.ImageResponse, error) {
	return e.Execute(ctx, domain.EditRequest{Mode: domain.ModeFilter, Image: img, Prompt: prompt})
}

// ApplyAdjustment は画像全体に一様な補正を適用します。
func (e *GeminiEditor) ApplyAdjustment(ctx context.Context, img domain.ImageResource, prompt string) (*domain.ImageResponse, error) {
	return e.Execute(ctx, domain.EditRequest{Mode: domain.ModeAdjustment, Image: img, Prompt: prompt})
}

// Execute はパーツを組み立てて 1 回だけ送信し、応答を分類します。
// API キーが見つからない場合は通信前に *domain.MissingCredentialError を返します。
func (e *GeminiEditor) Execute(ctx context.Context, req domain.EditRequest) (*domain.ImageResponse, error) {
	apiKey, err := e.credentials.APIKey(ctx)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	logger := slog.With("request_id", requestID, "mode", req.Mode, "model", e.model)

	parts, err := e.buildParts(ctx, req)
	if err != nil {
		return nil, err
	}

	dispatcher, err := e.newDispatcher(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("Dispatcherの初期化に失敗しました: %w", err)
	}

	logger.InfoContext(ctx, "画像編集リクエストを送信します", "parts", len(parts), "mime_type", req.Image.MimeType)
	resp, err := dispatcher.Dispatch(ctx, e.model, parts)
	if err != nil {
		logger.ErrorContext(ctx, "画像編集リクエストの送信に失敗しました", "error", err)
		return nil, fmt.Errorf("Gemini画像編集エラー (%s): %w", req.Mode, err)
	}

	out, err := ClassifyResponse(resp, req.Mode)
	if err != nil {
		logger.WarnContext(ctx, "画像が返されませんでした", "kind", domain.Kind(err), "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "画像編集が完了しました", "mime_type", out.MimeType, "bytes", len(out.Data))
	return out, nil
}

// buildParts は [画像, マスク(局所編集のみ), テキスト] の順でパーツを組み立てます。
func (e *GeminiEditor) buildParts(ctx context.Context, req domain.EditRequest) ([]*genai.Part, error) {
	source, err := EncodePayload(req.Image)
	if err != nil {
		return nil, err
	}
	imagePart, err := source.Part()
	if err != nil {
		return nil, err
	}
	parts := []*genai.Part{imagePart}

	if req.Mode == domain.ModeEdit {
		mask, err := BuildMaskPayload(ctx, req.Image, *req.Hotspot)
		if err != nil {
			return nil, err
		}
		maskPart, err := mask.Part()
		if err != nil {
			return nil, err
		}
		parts = append(parts, maskPart)
	}

	text, err := e.prompts.Build(req.Mode, req.Prompt)
	if err != nil {
		return nil, err
	}
	return append(parts, genai.NewPartFromText(text)), nil
}
