package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

// ResultWriter は編集結果の書き込み先です。remoteio.OutputWriter がこれを満たします。
type ResultWriter interface {
	Write(ctx context.Context, path string, r io.Reader, contentType string) error
}

// extensions は結果の MIME タイプと保存時の拡張子の対応です。
var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Save は編集結果を outputPath に書き出します。ローカルパスと gs:// の両方に対応します。
func Save(ctx context.Context, writer ResultWriter, outputPath string, resp *domain.ImageResponse) error {
	if writer == nil {
		return fmt.Errorf("出力先のWriterが初期化されていません")
	}
	if err := writer.Write(ctx, outputPath, bytes.NewReader(resp.Data), resp.MimeType); err != nil {
		return fmt.Errorf("編集結果の保存に失敗しました (%s): %w", outputPath, err)
	}
	return nil
}

// ResultPath は一括編集の出力先パスを組み立てます。
// 入力順の連番 (1 始まり) を先頭に付けるため、別ディレクトリの同名ファイルでも衝突しません。
// 元のファイル名に "_edited" と MIME タイプに応じた拡張子を付けます。
func ResultPath(dir, source string, index int, mimeType string) string {
	base := path.Base(source)
	if strings.HasPrefix(source, "data:") || base == "." || base == "/" {
		base = "image"
	}
	base = strings.TrimSuffix(base, path.Ext(base))

	ext, ok := extensions[mimeType]
	if !ok {
		ext = ".img"
	}
	return fmt.Sprintf("%s/%03d_%s_edited%s", strings.TrimRight(dir, "/"), index+1, base, ext)
}
