package generator

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/imgutil"
	"google.golang.org/genai"
)

// EncodePayload は画像リソースを data URL 経由で送信用の Payload に変換します。
// MIME タイプが宣言されていない場合はバイト列から判定します。
func EncodePayload(res domain.ImageResource) (Payload, error) {
	if len(res.Data) == 0 {
		return Payload{}, &domain.EncodingError{Op: "read", Err: fmt.Errorf("画像データが空です (%s)", res.Name)}
	}

	mimeType := res.MimeType
	if mimeType == "" {
		mimeType = http.DetectContentType(res.Data)
	}

	mime, data, err := imgutil.ParseDataURL(imgutil.EncodeDataURL(mimeType, res.Data))
	if err != nil {
		return Payload{}, &domain.EncodingError{Op: "parse data url", Err: err}
	}
	return Payload{MimeType: mime, Data: data}, nil
}

// Bytes は base64 ペイロードを生のバイト列に戻します。
func (p Payload) Bytes() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(p.Data)
	if err != nil {
		return nil, &domain.EncodingError{Op: "decode payload", Err: err}
	}
	return data, nil
}

// DataURL は data:<mimeType>;base64,<payload> 形式の文字列を返します。
func (p Payload) DataURL() string {
	return "data:" + p.MimeType + ";base64," + p.Data
}

// Part は Payload を InlineData を持つ genai.Part に変換します。
func (p Payload) Part() (*genai.Part, error) {
	data, err := p.Bytes()
	if err != nil {
		return nil, err
	}
	return genai.NewPartFromBytes(data, p.MimeType), nil
}
