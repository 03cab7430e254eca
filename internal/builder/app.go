package builder

import (
	"github.com/shouni/gemini-photo-kit/internal/config"
	"github.com/shouni/gemini-photo-kit/pkg/generator"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持します。
// これを各 Runner やサーバーに渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config *config.Config         // 環境変数と CLI フラグから組み立てた設定
	Editor generator.PhotoEditor  // 3 モードの編集窓口
	Loader generator.SourceLoader // 編集元画像の読み込み
	Writer remoteio.OutputWriter  // 結果の保存先（ローカル or GCS）
}

// NewAppContext は AppContext の新しいインスタンスを生成します。
func NewAppContext(
	cfg *config.Config,
	editor generator.PhotoEditor,
	loader generator.SourceLoader,
	writer remoteio.OutputWriter,
) AppContext {
	return AppContext{
		Config: cfg,
		Editor: editor,
		Loader: loader,
		Writer: writer,
	}
}
