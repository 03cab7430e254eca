package generator

import (
	"context"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/imgutil"
)

// remoteOnlyLoader は data URL と http(s) の参照先だけを内側のローダーに渡します。
type remoteOnlyLoader struct {
	inner SourceLoader
}

// RemoteOnly は、ローカルパスや gs:// を *domain.InvalidRequestError で拒否する SourceLoader を返します。
// 外部から参照先を受け取る HTTP API で使います。
func RemoteOnly(inner SourceLoader) SourceLoader {
	return &remoteOnlyLoader{inner: inner}
}

// Load は許可された参照先のときだけ読み込みます。
func (l *remoteOnlyLoader) Load(ctx context.Context, uri string) (*domain.ImageResource, error) {
	if !imgutil.IsDataURL(uri) && !isHTTPURL(uri) {
		return nil, &domain.InvalidRequestError{Reason: "image には data URL か http(s) の URL を指定してください"}
	}
	return l.inner.Load(ctx, uri)
}
