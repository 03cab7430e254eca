package credential

import (
	"context"
	"strings"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/go-utils/envutil"
)

// DefaultEnvKey は API キーを読む環境変数名です。
const DefaultEnvKey = "GEMINI_API_KEY"

// Provider は API キーを取得する契約です。
// キーが無い場合は *domain.MissingCredentialError を返します。
type Provider interface {
	APIKey(ctx context.Context) (string, error)
}

// Static は固定値のキーを返します。
type Static string

// APIKey は保持しているキーを返します。
func (s Static) APIKey(_ context.Context) (string, error) {
	key := strings.TrimSpace(string(s))
	if key == "" {
		return "", &domain.MissingCredentialError{}
	}
	return key, nil
}

// Env は環境変数からキーを読みます。呼び出しのたびに読み直します。
type Env struct {
	Key string
}

// NewEnv は指定した環境変数を読む Env を返します。空文字なら DefaultEnvKey を使います。
func NewEnv(key string) Env {
	if key == "" {
		key = DefaultEnvKey
	}
	return Env{Key: key}
}

// APIKey は環境変数の値を返します。
func (e Env) APIKey(_ context.Context) (string, error) {
	key := strings.TrimSpace(envutil.GetEnv(e.Key, ""))
	if key == "" {
		return "", &domain.MissingCredentialError{Name: e.Key}
	}
	return key, nil
}

// Chain は先頭から順に問い合わせ、最初に見つかったキーを返します。
type Chain []Provider

// APIKey は最初に取得できたキーを返します。どれも無ければ最後のエラーを返します。
func (c Chain) APIKey(ctx context.Context) (string, error) {
	var lastErr error = &domain.MissingCredentialError{}
	for _, p := range c {
		if p == nil {
			continue
		}
		key, err := p.APIKey(ctx)
		if err == nil {
			return key, nil
		}
		lastErr = err
	}
	return "", lastErr
}
