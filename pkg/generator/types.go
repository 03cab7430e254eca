package generator

const (
	cacheKeySource = "source:"
	maskMimeType   = "image/png"
	maskName       = "mask.png"
)

// Payload は送信用の画像表現（MIME タイプと base64 ペイロード）です。
type Payload struct {
	MimeType string
	Data     string
}
