package generator

import (
	"strings"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"google.golang.org/genai"
)

// ClassifyResponse はモデルの応答を成功か失敗カテゴリのいずれかに分類します。
// 判定順はブロック、画像、終了理由、画像なしの順で、最初に該当したものを返します。
func ClassifyResponse(resp *genai.GenerateContentResponse, mode domain.EditMode) (*domain.ImageResponse, error) {
	if resp == nil {
		return nil, &domain.NoImageReturnedError{Mode: mode}
	}

	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return nil, &domain.BlockedError{
			Reason:  string(fb.BlockReason),
			Message: fb.BlockReasonMessage,
		}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, &domain.NoImageReturnedError{Mode: mode}
	}
	candidate := resp.Candidates[0]

	if part := firstImagePart(candidate); part != nil {
		return &domain.ImageResponse{
			Data:     part.InlineData.Data,
			MimeType: part.InlineData.MIMEType,
		}, nil
	}

	if reason := candidate.FinishReason; reason != "" && reason != genai.FinishReasonStop {
		return nil, &domain.AbnormalFinishError{Mode: mode, Reason: string(reason)}
	}

	return nil, &domain.NoImageReturnedError{Mode: mode, TextFeedback: strings.TrimSpace(resp.Text())}
}

func firstImagePart(c *genai.Candidate) *genai.Part {
	if c.Content == nil {
		return nil
	}
	for _, p := range c.Content.Parts {
		if p != nil && p.InlineData != nil {
			return p
		}
	}
	return nil
}
