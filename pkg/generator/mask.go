package generator

import (
	"context"
	"log/slog"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/imgutil"
)

// BuildMaskPayload は元画像と同じサイズのマスクを合成し、image/png の Payload として返します。
// 範囲外のホットスポットは最も近いピクセルに寄せます。
func BuildMaskPayload(ctx context.Context, img domain.ImageResource, hotspot domain.Hotspot) (Payload, error) {
	width, height, format, err := imgutil.Dimensions(img.Data)
	if err != nil {
		return Payload{}, &domain.EncodingError{Op: "decode dimensions", Err: err}
	}

	hs, clamped := imgutil.ClampHotspot(width, height, hotspot)
	if clamped {
		slog.WarnContext(ctx, "ホットスポットが画像の範囲外のため補正しました",
			"x", hotspot.X, "y", hotspot.Y,
			"clamped_x", hs.X, "clamped_y", hs.Y,
			"width", width, "height", height,
		)
	}

	maskData, err := imgutil.SynthesizeMask(width, height, hs)
	if err != nil {
		return Payload{}, err
	}

	slog.DebugContext(ctx, "マスクを合成しました",
		"width", width, "height", height, "format", format,
		"radius", imgutil.MaskRadius(width, height),
	)

	return EncodePayload(domain.ImageResource{Name: maskName, MimeType: maskMimeType, Data: maskData})
}
