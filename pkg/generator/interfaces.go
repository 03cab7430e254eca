package generator

import (
	"context"
	"io"
	"time"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"google.golang.org/genai"
)

// PhotoEditor はビジネスロジック層が利用する統合窓口です。
type PhotoEditor interface {
	// EditImage はホットスポット周辺だけを編集します。
	EditImage(ctx context.Context, img domain.ImageResource, prompt string, hotspot domain.Hotspot) (*domain.ImageResponse, error)
	// ApplyFilter は構図を保ったままスタイルを適用します。
	ApplyFilter(ctx context.Context, img domain.ImageResource, prompt string) (*domain.ImageResponse, error)
	// ApplyAdjustment は画像全体に一様な補正を適用します。
	ApplyAdjustment(ctx context.Context, img domain.ImageResource, prompt string) (*domain.ImageResponse, error)
	// Execute はモードに応じたリクエストを実行します。
	Execute(ctx context.Context, req domain.EditRequest) (*domain.ImageResponse, error)
}

// Dispatcher は組み立てたパーツをリモートモデルへ 1 回だけ送信し、生の応答を返します。
type Dispatcher interface {
	Dispatch(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error)
}

// DispatcherFactory は API キーごとに Dispatcher を生成します。
type DispatcherFactory func(ctx context.Context, apiKey string) (Dispatcher, error)

// SourceLoader は参照先（data URL, http(s), gs://, ローカルパス）から画像を読み込みます。
type SourceLoader interface {
	Load(ctx context.Context, uri string) (*domain.ImageResource, error)
}

// ImageCacher は、画像をキャッシュするためのインターフェースです。
type ImageCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}

// HTTPClient は、URLからデータを取得するためのインターフェースです。
// httpkit.Client がこれを満たします。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
	// IsSafeURL はプライベート IP やループバックを指す URL を拒否します。
	IsSafeURL(url string) (bool, error)
}

// InputReader は、ローカルファイルや GCS のオブジェクトを開くためのインターフェースです。
type InputReader interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}
