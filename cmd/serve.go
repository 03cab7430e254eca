package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shouni/gemini-photo-kit/internal/server"
	"github.com/spf13/cobra"
)

var listenAddr string

// serveCmd は、編集機能を JSON の HTTP API として公開するコマンドです。
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "編集 API サーバーを起動します。",
	RunE:  serveCommand,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "待ち受けアドレス（省略時は PHOTO_KIT_ADDR か :8080）。")
}

func serveCommand(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCtx, err := setupAppContext(ctx)
	if err != nil {
		return err
	}
	kit := appCtx.Config.Kit
	srv, err := server.New(appCtx.Loader, appCtx.Editor, kit.MaxBodyBytes)
	if err != nil {
		return fmt.Errorf("サーバーの初期化に失敗しました: %w", err)
	}

	addr := kit.ListenAddr
	if listenAddr != "" {
		addr = listenAddr
	}
	return srv.ListenAndServe(ctx, addr)
}

