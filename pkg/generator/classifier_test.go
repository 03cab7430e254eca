package generator

import (
	"testing"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestClassifyResponse(t *testing.T) {
	pngData := []byte("png-bytes")

	t.Run("画像があれば成功として返す", func(t *testing.T) {
		out, err := ClassifyResponse(imageResponse("image/png", pngData), domain.ModeEdit)
		require.NoError(t, err)
		assert.Equal(t, "image/png", out.MimeType)
		assert.Equal(t, pngData, out.Data)
		assert.Equal(t, "data:image/png;base64,cG5nLWJ5dGVz", out.DataURL())
	})

	t.Run("テキストの後ろにある画像パートを拾う", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "here you go"},
					{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: []byte("first")}},
					{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("second")}},
				}},
			}},
		}
		out, err := ClassifyResponse(resp, domain.ModeFilter)
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", out.MimeType)
		assert.Equal(t, []byte("first"), out.Data)
	})

	t.Run("ブロック理由は画像より優先される", func(t *testing.T) {
		resp := imageResponse("image/png", pngData)
		resp.PromptFeedback = &genai.GenerateContentResponsePromptFeedback{
			BlockReason:        genai.BlockedReason("SAFETY"),
			BlockReasonMessage: "unsafe content",
		}

		_, err := ClassifyResponse(resp, domain.ModeEdit)

		var blocked *domain.BlockedError
		require.ErrorAs(t, err, &blocked)
		assert.Equal(t, "SAFETY", blocked.Reason)
		assert.Equal(t, "unsafe content", blocked.Message)
		assert.Contains(t, err.Error(), "Request was blocked. Reason: SAFETY. unsafe content")
	})

	t.Run("画像は終了理由より優先される", func(t *testing.T) {
		resp := imageResponse("image/png", pngData)
		resp.Candidates[0].FinishReason = genai.FinishReasonSafety

		out, err := ClassifyResponse(resp, domain.ModeAdjustment)

		require.NoError(t, err)
		assert.Equal(t, pngData, out.Data)
	})

	t.Run("画像が無く STOP 以外で終了したら AbnormalFinishError", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
		}

		_, err := ClassifyResponse(resp, domain.ModeFilter)

		var finish *domain.AbnormalFinishError
		require.ErrorAs(t, err, &finish)
		assert.Equal(t, "SAFETY", finish.Reason)
		assert.Equal(t, domain.ModeFilter, finish.Mode)
		assert.Contains(t, err.Error(), "stopped unexpectedly")
	})

	t.Run("STOP でテキストだけなら NoImageReturnedError にテキストを載せる", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content:      &genai.Content{Parts: []*genai.Part{{Text: "  I cannot do that.  "}}},
				FinishReason: genai.FinishReasonStop,
			}},
		}

		_, err := ClassifyResponse(resp, domain.ModeEdit)

		var noImage *domain.NoImageReturnedError
		require.ErrorAs(t, err, &noImage)
		assert.Equal(t, "I cannot do that.", noImage.TextFeedback)
		assert.Contains(t, err.Error(), "responded with text")
	})

	t.Run("終了理由が FINISH_REASON_UNSPECIFIED でも STOP 以外なので AbnormalFinishError", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonUnspecified}},
		}

		_, err := ClassifyResponse(resp, domain.ModeAdjustment)

		var finish *domain.AbnormalFinishError
		require.ErrorAs(t, err, &finish)
		assert.Equal(t, "FINISH_REASON_UNSPECIFIED", finish.Reason)
	})

	t.Run("終了理由が空なら画像なしとして扱う", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{}}}},
		}

		_, err := ClassifyResponse(resp, domain.ModeAdjustment)

		var noImage *domain.NoImageReturnedError
		require.ErrorAs(t, err, &noImage)
		assert.Empty(t, noImage.TextFeedback)
	})

	t.Run("思考パートはテキストに含めない", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "planning the edit", Thought: true},
					{Text: "Sorry, I can't edit this."},
				}},
				FinishReason: genai.FinishReasonStop,
			}},
		}

		_, err := ClassifyResponse(resp, domain.ModeFilter)

		var noImage *domain.NoImageReturnedError
		require.ErrorAs(t, err, &noImage)
		assert.Equal(t, "Sorry, I can't edit this.", noImage.TextFeedback)
	})

	t.Run("候補が無い応答と nil 応答は NoImageReturnedError", func(t *testing.T) {
		for _, resp := range []*genai.GenerateContentResponse{nil, {}} {
			_, err := ClassifyResponse(resp, domain.ModeEdit)
			var noImage *domain.NoImageReturnedError
			assert.ErrorAs(t, err, &noImage)
		}
	})
}
