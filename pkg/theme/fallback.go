package theme

import (
	"math"
	"strconv"
	"strings"
)

// Adapt returns a copy of colors with every hex value replaced by the nearest
// 256-color palette index when depth is below 24 bits. Values that are not
// hex colors pass through untouched.
func Adapt(colors map[string]string, depth int) map[string]string {
	out := make(map[string]string, len(colors))
	for field, value := range colors {
		if depth < 24 {
			value = thTo256Color(value)
		}
		out[field] = value
	}
	return out
}

// thTo256Color maps "#rrggbb" to the closer of the nearest 6x6x6 cube entry
// and the nearest grayscale ramp entry, as a decimal index string.
func thTo256Color(hex string) string {
	r, g, b, ok := thParseHex(hex)
	if !ok {
		return hex
	}

	cube := thNearestCubeIndex(r, g, b)
	gray := thNearestGray(r, g, b)

	cr, cg, cb := thCubeToRGB(cube)
	gv := thGrayToValue(gray)

	idx := cube
	if thColorDistance(r, g, b, gv, gv, gv) < thColorDistance(r, g, b, cr, cg, cb) {
		idx = gray
	}
	return strconv.Itoa(idx)
}

// Cube channel levels of palette entries 16-231.
var thCubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

func thNearestCubeIndex(r, g, b uint8) int {
	return 16 + 36*thNearestCubeComponent(r) + 6*thNearestCubeComponent(g) + thNearestCubeComponent(b)
}

func thNearestCubeComponent(v uint8) int {
	best, bestDist := 0, math.MaxInt32
	for i, lv := range thCubeLevels {
		d := int(v) - int(lv)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// thNearestGray picks from the ramp 232-255 (values 8, 18, ..., 238).
func thNearestGray(r, g, b uint8) int {
	gray := (int(r) + int(g) + int(b)) / 3
	idx := (gray - 8 + 5) / 10
	switch {
	case gray < 4 || idx < 0:
		idx = 0
	case gray > 243 || idx > 23:
		idx = 23
	}
	return 232 + idx
}

func thCubeToRGB(idx int) (r, g, b uint8) {
	idx -= 16
	return thCubeLevels[idx/36], thCubeLevels[(idx%36)/6], thCubeLevels[idx%6]
}

func thGrayToValue(idx int) uint8 {
	return uint8(8 + (idx-232)*10)
}

func thColorDistance(r1, g1, b1, r2, g2, b2 uint8) float64 {
	dr := float64(r1) - float64(r2)
	dg := float64(g1) - float64(g2)
	db := float64(b1) - float64(b2)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// thParseHex accepts "#RRGGBB" or "RRGGBB".
func thParseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// IsDark reports whether a hex color's perceived luminance is below half.
// Non-hex values count as dark.
func IsDark(hex string) bool {
	r, g, b, ok := thParseHex(hex)
	if !ok {
		return true
	}
	lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	return lum < 128
}
