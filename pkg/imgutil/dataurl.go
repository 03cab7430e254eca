package imgutil

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// mimePattern は data URL のスキーム部分から MIME タイプを取り出します。
var mimePattern = regexp.MustCompile(`:(.*?);`)

// EncodeDataURL はバイト列を data:<mimeType>;base64,<payload> 形式に変換します。
func EncodeDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURL は data URL を MIME タイプと base64 ペイロードに分割します。
// ペイロードは最初のカンマ以降すべてです。
func ParseDataURL(dataURL string) (mimeType string, payload string, err error) {
	prefix, payload, found := strings.Cut(dataURL, ",")
	if !found {
		return "", "", fmt.Errorf("invalid data URL: separator not found")
	}

	m := mimePattern.FindStringSubmatch(prefix)
	if len(m) < 2 || m[1] == "" {
		return "", "", fmt.Errorf("could not parse MIME type from data URL")
	}
	return m[1], payload, nil
}

// DecodeDataURL は data URL を MIME タイプと生のバイト列に変換します。
func DecodeDataURL(dataURL string) (string, []byte, error) {
	mimeType, payload, err := ParseDataURL(dataURL)
	if err != nil {
		return "", nil, err
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return mimeType, data, nil
}

// IsDataURL は文字列が data URL かどうかを判定します。
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}
