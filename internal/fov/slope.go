package fov

// slope is an exact rational column/depth ratio. den is always positive and
// the pair is kept in lowest terms.
type slope struct {
	num, den int
}

func newSlope(num, den int) slope {
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs(num), den); g > 1 {
		num /= g
		den /= g
	}
	return slope{num: num, den: den}
}

// tileSlope is the slope through the left edge of the tile at (depth, col).
func tileSlope(depth, col int) slope {
	return newSlope(2*col-1, 2*depth)
}

// roundTiesUp rounds n/d to the nearest integer, halves going up.
func roundTiesUp(n, d int) int {
	return floorDiv(2*n+d, 2*d)
}

// roundTiesDown rounds n/d to the nearest integer, halves going down.
func roundTiesDown(n, d int) int {
	return ceilDiv(2*n-d, 2*d)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
