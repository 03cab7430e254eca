package imgutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Dimensions は画像ヘッダーだけをデコードして幅と高さを返します。
// PNG, JPEG, GIF に加えて WebP, BMP, TIFF に対応しています。
func Dimensions(data []byte) (width, height int, format string, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, "", fmt.Errorf("画像サイズの取得に失敗しました: %w", err)
	}
	return cfg.Width, cfg.Height, format, nil
}
