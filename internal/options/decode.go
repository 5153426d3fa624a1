package options

import (
	"math"
	"strconv"
	"strings"
)

// ParseDimensions decodes a "WxH" image size. Both parts must be positive
// integers.
func ParseDimensions(s string) (width, height int, ok bool) {
	w, h, found := strings.Cut(s, "x")
	if !found {
		return 0, 0, false
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, false
	}
	height, err = strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

// ParseColor decodes an "r/g/b" color. Each component must be a finite,
// non-negative number.
func ParseColor(s string) (Vec3, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Vec3{}, false
	}
	var c [3]float32
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 32)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Vec3{}, false
		}
		c[i] = float32(v)
	}
	return Vec3{X: c[0], Y: c[1], Z: c[2]}, true
}

// ParsePixel decodes an "x/y" pixel coordinate with non-negative components.
// It does not know the image size; bounds are checked by the caller.
func ParsePixel(s string) (Int2, bool) {
	xs, ys, found := strings.Cut(s, "/")
	if !found {
		return Int2{}, false
	}
	x, ok := ParseCount(xs)
	if !ok {
		return Int2{}, false
	}
	y, ok := ParseCount(ys)
	if !ok {
		return Int2{}, false
	}
	return Int2{X: x, Y: y}, true
}

// ParseCount decodes a single non-negative integer.
func ParseCount(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Contains reports whether p lies inside an image of the given size.
func (p Int2) Contains(width, height int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}
