package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// BatchResult は 1 件分の編集結果です。Err が nil でなければ Response は nil です。
type BatchResult struct {
	Source   string
	Response *domain.ImageResponse
	Err      error
}

// BatchRunner は複数の元画像に同じ指示を並列で適用します。
// 1 件の失敗は他の処理を止めず、結果ごとに記録します。
type BatchRunner struct {
	runner      *EditRunner
	interval    time.Duration
	burst       int
	concurrency int
}

// NewBatchRunner は BatchRunner を初期化します。
func NewBatchRunner(runner *EditRunner, interval time.Duration, burst, concurrency int) *BatchRunner {
	if burst <= 0 {
		burst = 1
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BatchRunner{runner: runner, interval: interval, burst: burst, concurrency: concurrency}
}

// Run は sources の順序を保ったまま結果を返します。
// コンテキストがキャンセルされた場合は未処理の項目にそのエラーが入ります。
func (b *BatchRunner) Run(ctx context.Context, mode domain.EditMode, sources []string, prompt string, hotspot *domain.Hotspot) []BatchResult {
	results := make([]BatchResult, len(sources))

	limit := rate.Inf
	if b.interval > 0 {
		limit = rate.Every(b.interval)
	}
	limiter := rate.NewLimiter(limit, b.burst)

	var eg errgroup.Group
	eg.SetLimit(b.concurrency)
	slog.InfoContext(ctx, "一括編集を開始します", "count", len(sources), "mode", mode, "interval", b.interval)

	for i, src := range sources {
		eg.Go(func() error {
			results[i].Source = src
			if err := limiter.Wait(ctx); err != nil {
				results[i].Err = err
				return nil
			}

			resp, err := b.runner.Run(ctx, EditJob{Mode: mode, Source: src, Prompt: prompt, Hotspot: hotspot})
			if err != nil {
				slog.ErrorContext(ctx, "編集に失敗しました", "source", src, "kind", domain.Kind(err), "error", err)
				results[i].Err = err
				return nil
			}
			results[i].Response = resp
			return nil
		})
	}
	_ = eg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	slog.InfoContext(ctx, "一括編集が完了しました", "total", len(results), "failed", failed)
	return results
}
