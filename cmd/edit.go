package cmd

import (
	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/spf13/cobra"
)

// editCmd は、ホットスポット周辺だけを書き換える局所編集コマンドです。
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "指定した座標の周辺だけを編集します。",
	Long: `編集元の画像と指示文、ホットスポット（-x, -y）を受け取り、
その周辺だけを書き換えた画像を生成します。座標は元画像のピクセル単位です。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hotspot := &domain.Hotspot{X: opts.X, Y: opts.Y}
		return runSingle(cmd.Context(), cmd.OutOrStdout(), domain.ModeEdit, hotspot)
	},
}

// filterCmd は、構図を保ったままスタイルを適用するコマンドです。
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "画像全体にスタイルフィルターを適用します。",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd.Context(), cmd.OutOrStdout(), domain.ModeFilter, nil)
	},
}

// adjustCmd は、画像全体に一様な補正を適用するコマンドです。
var adjustCmd = &cobra.Command{
	Use:   "adjust",
	Short: "画像全体に写実的な補正を適用します。",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd.Context(), cmd.OutOrStdout(), domain.ModeAdjustment, nil)
	},
}

func init() {
	editCmd.Flags().Float64VarP(&opts.X, "x", "x", 0, "ホットスポットの X 座標（ピクセル）。")
	editCmd.Flags().Float64VarP(&opts.Y, "y", "y", 0, "ホットスポットの Y 座標（ピクセル）。")
	_ = editCmd.MarkFlagRequired("x")
	_ = editCmd.MarkFlagRequired("y")
}
