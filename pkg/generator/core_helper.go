package generator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func (c *SourceCore) fetchImageData(ctx context.Context, rawURL string) ([]byte, error) {
	if isHTTPURL(rawURL) {
		if safe, err := c.httpClient.IsSafeURL(rawURL); err != nil || !safe {
			return nil, fmt.Errorf("安全ではないURLが指定されました (%s): %v", rawURL, err)
		}
		return c.httpClient.FetchBytes(ctx, rawURL)
	}

	rc, err := c.reader.Open(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// isHTTPURL は参照先が http(s) かどうかを判定します。
// スキームは小文字だけを認めます。
func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// detectImageMimeType はバイト列から MIME タイプを判定し、画像以外を拒否します。
func detectImageMimeType(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("画像データが空です")
	}
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("MIMEタイプが画像ではありません: %s", mimeType)
	}
	return mimeType, nil
}
