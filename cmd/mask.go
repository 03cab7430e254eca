package cmd

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-photo-kit/internal/builder"
	"github.com/shouni/gemini-photo-kit/internal/config"
	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/generator"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/spf13/cobra"
)

// maskCmd は、局所編集で送信されるマスクだけを生成して保存するコマンドです。
// Gemini への送信は行わないため、APIキーは不要です。
var maskCmd = &cobra.Command{
	Use:   "mask",
	Short: "局所編集用のマスク画像を生成して保存します。",
	RunE:  maskCommand,
}

func init() {
	maskCmd.Flags().Float64VarP(&opts.X, "x", "x", 0, "ホットスポットの X 座標（ピクセル）。")
	maskCmd.Flags().Float64VarP(&opts.Y, "y", "y", 0, "ホットスポットの Y 座標（ピクセル）。")
	_ = maskCmd.MarkFlagRequired("x")
	_ = maskCmd.MarkFlagRequired("y")
}

func maskCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	source, err := singleInput()
	if err != nil {
		return err
	}
	output := opts.Output
	if output == "" {
		output = "mask.png"
	}

	gcsFactory, err := gcsfactory.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create GCS client factory: %w", err)
	}
	defer gcsFactory.Close()
	reader, err := gcsFactory.InputReader()
	if err != nil {
		return fmt.Errorf("InputReaderの初期化に失敗しました: %w", err)
	}
	writer, err := gcsFactory.OutputWriter()
	if err != nil {
		return fmt.Errorf("OutputWriterの初期化に失敗しました: %w", err)
	}

	loader, err := builder.BuildSourceLoader(config.LoadConfig().Kit, reader)
	if err != nil {
		return err
	}
	img, err := loader.Load(ctx, source)
	if err != nil {
		return err
	}

	payload, err := generator.BuildMaskPayload(ctx, *img, domain.Hotspot{X: opts.X, Y: opts.Y})
	if err != nil {
		return fmt.Errorf("マスクの生成に失敗しました: %w", err)
	}
	data, err := payload.Bytes()
	if err != nil {
		return err
	}

	if err := writer.Write(ctx, output, bytes.NewReader(data), payload.MimeType); err != nil {
		return fmt.Errorf("マスクの保存に失敗しました: %w", err)
	}

	slog.Info("マスクを保存しました", "path", output, "x", opts.X, "y", opts.Y, "bytes", len(data))
	return nil
}
