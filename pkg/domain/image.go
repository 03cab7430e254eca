package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EditMode は編集リクエストの種類です。応答解析時のコンテキストラベルとしても使います。
type EditMode string

const (
	ModeEdit       EditMode = "edit"       // ホットスポット周辺だけを変更する局所編集
	ModeFilter     EditMode = "filter"     // 構図を保ったままスタイルだけを適用するフィルター
	ModeAdjustment EditMode = "adjustment" // 画像全体へ一様に適用する補正
)

// Modes はサポートしているモードの一覧です。
var Modes = []EditMode{ModeEdit, ModeFilter, ModeAdjustment}

// ParseEditMode は文字列を EditMode に変換します。
func ParseEditMode(s string) (EditMode, error) {
	for _, m := range Modes {
		if string(m) == strings.ToLower(strings.TrimSpace(s)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("不明な編集モードです: '%s'", s)
}

// ImageResource は編集元の画像です。一度読み込んだら変更しません。
type ImageResource struct {
	Name     string
	MimeType string
	Data     []byte
}

// Hotspot は局所編集の中心となる画像上のピクセル座標です。
type Hotspot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EditRequest は 3 種類の編集モードをまとめたリクエストです。
// Hotspot は ModeEdit の場合のみ必須です。
type EditRequest struct {
	Mode    EditMode
	Image   ImageResource
	Prompt  string
	Hotspot *Hotspot
}

// Validate はリクエストの構造だけを検証します。プロンプトの内容は検査しません。
func (r EditRequest) Validate() error {
	switch r.Mode {
	case ModeEdit:
		if r.Hotspot == nil {
			return &InvalidRequestError{Reason: "局所編集にはホットスポットの指定が必要です"}
		}
	case ModeFilter, ModeAdjustment:
	default:
		return &InvalidRequestError{Reason: fmt.Sprintf("不明な編集モードです: '%s'", r.Mode)}
	}
	if len(r.Image.Data) == 0 {
		return &InvalidRequestError{Reason: "編集元の画像データが空です"}
	}
	return nil
}

// ImageResponse は編集結果の画像データです。
type ImageResponse struct {
	Data     []byte
	MimeType string
}

// DataURL は結果を data:<mimeType>;base64,<payload> 形式で返します。
func (r *ImageResponse) DataURL() string {
	return "data:" + r.MimeType + ";base64," + base64.StdEncoding.EncodeToString(r.Data)
}
