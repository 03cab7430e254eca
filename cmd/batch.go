package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-photo-kit/internal/runner"
	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/spf13/cobra"
)

// batchCmd は、複数の画像に同じ指示を並列で適用するコマンドです。
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "複数の画像に同じ編集をまとめて適用します。",
	Long: `--input を複数指定すると、レート制限をかけながら並列に編集します。
1 枚の失敗は他の画像の処理を止めません。結果は --output-dir に保存します。`,
	RunE: batchCommand,
}

func init() {
	batchCmd.Flags().StringVarP(&opts.Mode, "mode", "m", string(domain.ModeAdjustment), "編集モード（edit, filter, adjustment）。")
	batchCmd.Flags().StringVar(&opts.OutputDir, "output-dir", "output", "結果を保存するディレクトリ（ローカル or gs://...）。")
	batchCmd.Flags().Float64VarP(&opts.X, "x", "x", 0, "edit モードで使うホットスポットの X 座標。")
	batchCmd.Flags().Float64VarP(&opts.Y, "y", "y", 0, "edit モードで使うホットスポットの Y 座標。")
}

func batchCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if len(opts.Inputs) == 0 {
		return fmt.Errorf("編集元の画像（--input）を 1 件以上指定してください")
	}
	mode, err := domain.ParseEditMode(opts.Mode)
	if err != nil {
		return err
	}
	var hotspot *domain.Hotspot
	if mode == domain.ModeEdit {
		hotspot = &domain.Hotspot{X: opts.X, Y: opts.Y}
	}

	appCtx, err := setupAppContext(ctx)
	if err != nil {
		return err
	}
	editRunner, err := runner.NewEditRunner(appCtx.Loader, appCtx.Editor)
	if err != nil {
		return err
	}
	kit := appCtx.Config.Kit
	batch := runner.NewBatchRunner(editRunner, kit.RateInterval, kit.RateBurst, kit.Concurrency)

	results := batch.Run(ctx, mode, opts.Inputs, opts.Prompt, hotspot)

	failed := 0
	for i, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "NG  %s: [%s] %v\n", res.Source, domain.Kind(res.Err), res.Err)
			continue
		}
		path := runner.ResultPath(opts.OutputDir, res.Source, i, res.Response.MimeType)
		if err := runner.Save(ctx, appCtx.Writer, path, res.Response); err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "NG  %s: %v\n", res.Source, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK  %s -> %s\n", res.Source, path)
	}

	slog.Info("一括編集の結果", "total", len(results), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d 件中 %d 件の編集に失敗しました", len(results), failed)
	}
	return nil
}
