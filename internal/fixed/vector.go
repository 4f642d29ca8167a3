package fixed

import "fmt"

// Vec3 is a fixed-point 3D vector. It is always passed by value.
type Vec3 struct {
	X, Y, Z Fixed
}

// Zero is the zero vector.
var Zero = Vec3{}

// V builds a vector from whole stage units.
func V(x, y, z int) Vec3 {
	return Vec3{FromInt(x), FromInt(y), FromInt(z)}
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// MulDiv scales every component by n/d with flooring division.
// A zero d yields the zero vector.
func (v Vec3) MulDiv(n, d int64) Vec3 {
	if d == 0 {
		return Zero
	}
	x, _ := MulDiv(v.X, n, d)
	y, _ := MulDiv(v.Y, n, d)
	z, _ := MulDiv(v.Z, n, d)
	return Vec3{x, y, z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}
