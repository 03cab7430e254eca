package cmd

import (
	"log/slog"
	"os"

	"github.com/shouni/gemini-photo-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は各サブコマンドで共有する CLI フラグの値です。
var opts config.EditOptions

// imageModel は --image-model で上書きするモデル名です。空なら環境変数かデフォルトを使います。
var imageModel string

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義します。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringSliceVarP(&opts.Inputs, "input", "i", nil, "編集元の画像（ローカル, gs://, http(s), data URL）。batch では複数指定できます。")
	rootCmd.PersistentFlags().StringVarP(&opts.Prompt, "prompt", "p", "", "編集内容の指示文。")

	// --- 出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "", "保存パス（ローカル or gs://...）。省略時は data URL を標準出力に表示します。")

	// --- AIモデル設定 ---
	rootCmd.PersistentFlags().StringVar(&imageModel, "image-model", "", "使用する Gemini 画像モデル名。")
}

// preRunAppE は、コマンド実行前にログ出力を設定します。
// APIキーの有無は送信直前に確認するため、ここでは検査しません。
func preRunAppE(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	slog.SetDefault(slog.New(handler))
	return nil
}

// Execute は、アプリケーションのメインエントリポイントです。
func Execute() {
	clibase.Execute(
		"photo-kit",
		addAppFlags,
		preRunAppE,
		editCmd,
		filterCmd,
		adjustCmd,
		maskCmd,
		batchCmd,
		serveCmd,
	)
}
