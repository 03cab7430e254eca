package imgutil

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/shouni/gemini-photo-kit/pkg/config"
	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

const (
	// MaskRadiusRatio は短辺に対する編集領域の半径の比率です。
	MaskRadiusRatio = 0.15
	// MaskCoreRatio は半径に対する完全に白い芯の比率です。
	MaskCoreRatio = 0.2
)

// MaskRadius は width x height の画像に対するマスク半径を返します。
func MaskRadius(width, height int) float64 {
	return float64(min(width, height)) * MaskRadiusRatio
}

// SynthesizeMask はホットスポットを中心とした柔らかい円形マスクを PNG で返します。
// 白が編集可能な領域、黒が保護領域です。芯 (0.2 * radius) までは白で、radius で黒になります。
// 画素数が config.MaxMaskPixels を超える場合はキャンバスを確保せず *domain.CanvasError を返します。
func SynthesizeMask(width, height int, hs domain.Hotspot) ([]byte, error) {
	if width <= 0 || height <= 0 || int64(width)*int64(height) > config.MaxMaskPixels {
		return nil, &domain.CanvasError{Width: width, Height: height}
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.Black)
	dc.Clear()

	radius := MaskRadius(width, height)
	gradient := gg.NewRadialGradient(hs.X, hs.Y, radius*MaskCoreRatio, hs.X, hs.Y, radius)
	gradient.AddColorStop(0, color.White)
	gradient.AddColorStop(1, color.Black)

	dc.SetFillStyle(gradient)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	gray := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(gray, gray.Bounds(), dc.Image(), image.Point{}, draw.Src)

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, gray); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ClampHotspot は範囲外の座標を [0,width) x [0,height) の最も近いピクセルに寄せます。
// 範囲内だった場合は元の座標と clamped=false を返します。
func ClampHotspot(width, height int, hs domain.Hotspot) (out domain.Hotspot, clamped bool) {
	out = hs
	if out.X < 0 {
		out.X = 0
	} else if out.X >= float64(width) {
		out.X = float64(width - 1)
	}
	if out.Y < 0 {
		out.Y = 0
	} else if out.Y >= float64(height) {
		out.Y = float64(height - 1)
	}
	return out, out != hs
}
