// Package noise implements lattice gradient noise over a fixed permutation
// table, with fractal (octave-summed) variants in one and two dimensions.
package noise

import "math"

var permutation = [256]int{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// perm is the permutation doubled so corner lookups never wrap.
var perm [512]int

func init() {
	for i := 0; i < 256; i++ {
		perm[i] = permutation[i]
		perm[i+256] = permutation[i]
	}
}

// Fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// Gradient1 scales x by one of eight magnitudes (1..8) picked from the low
// bits of hash, negated when bit 3 is set.
func Gradient1(hash int, x float64) float64 {
	h := hash & 15
	g := float64(1 + (h & 7))
	if h&8 != 0 {
		g = -g
	}
	return g * x
}

// Gradient2 dots one of the simplified 2D gradient directions with (x, y).
// Hashes 12 and 14 borrow x as their secondary term; other hashes >= 4 have
// no secondary term at all.
func Gradient2(hash int, x, y float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Noise1 evaluates 1D gradient noise at x. Output is roughly in [-1, 1] but
// not strictly bounded.
func Noise1(x float64) float64 {
	fx := math.Floor(x)
	xi := int(fx) & 255
	x -= fx
	u := Fade(x)

	a := perm[xi]
	b := perm[xi+1]
	return lerp(u, Gradient1(a, x), Gradient1(b, x-1))
}

// Noise2 evaluates 2D gradient noise at (x, y).
func Noise2(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	x -= fx
	y -= fy
	u := Fade(x)
	v := Fade(y)

	a := perm[xi] + yi
	aa := perm[a]
	ab := perm[a+1]
	b := perm[xi+1] + yi
	ba := perm[b]
	bb := perm[b+1]

	x1 := lerp(u, Gradient2(perm[aa], x, y), Gradient2(perm[ba], x-1, y))
	x2 := lerp(u, Gradient2(perm[ab], x, y-1), Gradient2(perm[bb], x-1, y-1))
	return lerp(v, x1, x2)
}
