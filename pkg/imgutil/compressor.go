package imgutil

import (
	"bytes"
	"image"
	"image/jpeg"
)

// CompressToJPEG は画像データ（PNG, GIF, JPEG, WebP等）をJPEG形式に再エンコードします。
// 画素数は変えないため、元画像から作ったマスクとサイズが一致します。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressIfLarger は data が limit バイトを超える場合だけ JPEG に再エンコードします。
// limit が 0 以下、または再エンコードしても小さくならない場合は元のデータを返します。
func CompressIfLarger(data []byte, limit int, quality int) ([]byte, bool, error) {
	if limit <= 0 || len(data) <= limit {
		return data, false, nil
	}
	compressed, err := CompressToJPEG(data, quality)
	if err != nil {
		return nil, false, err
	}
	if len(compressed) >= len(data) {
		return data, false, nil
	}
	return compressed, true, nil
}
