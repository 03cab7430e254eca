package domain

import (
	"errors"
	"fmt"
)

// MissingCredentialError は API キーが見つからない場合のエラーです。通信前に返します。
type MissingCredentialError struct {
	Name string
}

func (e *MissingCredentialError) Error() string {
	if e.Name == "" {
		return "API key not found. Please set your API key."
	}
	return fmt.Sprintf("API key not found (%s). Please set your API key.", e.Name)
}

// EncodingError は画像を送信用の表現に変換できなかった場合のエラーです。
type EncodingError struct {
	Op  string
	Err error
}

func (e *EncodingError) Error() string {
	if e.Err == nil {
		return "image encoding failed: " + e.Op
	}
	return fmt.Sprintf("image encoding failed: %s: %v", e.Op, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// CanvasError はマスク描画用のキャンバスを確保できなかった場合のエラーです。
type CanvasError struct {
	Width  int
	Height int
}

func (e *CanvasError) Error() string {
	return fmt.Sprintf("Could not create canvas context for mask (%dx%d).", e.Width, e.Height)
}

// BlockedError はプロンプトの段階でリモート側に拒否された場合のエラーです。
type BlockedError struct {
	Reason  string
	Message string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("Request was blocked. Reason: %s. %s", e.Reason, e.Message)
}

// AbnormalFinishError は画像を生成する前に生成が停止した場合のエラーです。
type AbnormalFinishError struct {
	Mode   EditMode
	Reason string
}

func (e *AbnormalFinishError) Error() string {
	return fmt.Sprintf("Image generation for %s stopped unexpectedly. Reason: %s. This often relates to safety settings.", e.Mode, e.Reason)
}

// NoImageReturnedError は応答に画像が含まれていなかった場合のエラーです。
// モデルがテキストを返した場合は TextFeedback に保持します。
type NoImageReturnedError struct {
	Mode         EditMode
	TextFeedback string
}

func (e *NoImageReturnedError) Error() string {
	msg := fmt.Sprintf("The AI model did not return an image for the %s. ", e.Mode)
	if e.TextFeedback != "" {
		return msg + fmt.Sprintf("The model responded with text: %q", e.TextFeedback)
	}
	return msg + "This can happen due to safety filters or if the request is too complex. Please try rephrasing your prompt to be more direct."
}

// InvalidRequestError はリクエストの構造が不正な場合のエラーです。
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid edit request: " + e.Reason
}

// エラー種別の識別子
const (
	KindInvalidRequest    = "invalid_request"
	KindMissingCredential = "missing_credential"
	KindEncoding          = "encoding"
	KindCanvas            = "canvas"
	KindBlocked           = "blocked"
	KindAbnormalFinish    = "abnormal_finish"
	KindNoImage           = "no_image"
	KindTransport         = "transport"
)

// Kind はエラーを分類して識別子を返します。
// どの型にも当てはまらない場合は通信エラーとして扱います。
func Kind(err error) string {
	var (
		invalidErr *InvalidRequestError
		credErr    *MissingCredentialError
		encErr     *EncodingError
		canvasErr  *CanvasError
		blockedErr *BlockedError
		finishErr  *AbnormalFinishError
		noImageErr *NoImageReturnedError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &invalidErr):
		return KindInvalidRequest
	case errors.As(err, &credErr):
		return KindMissingCredential
	case errors.As(err, &encErr):
		return KindEncoding
	case errors.As(err, &canvasErr):
		return KindCanvas
	case errors.As(err, &blockedErr):
		return KindBlocked
	case errors.As(err, &finishErr):
		return KindAbnormalFinish
	case errors.As(err, &noImageErr):
		return KindNoImage
	default:
		return KindTransport
	}
}
