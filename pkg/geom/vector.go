// Package geom provides a small 2D/3D vector value type.
//
// Operations that mix a 2D vector with a 3D vector promote the 2D vector
// into the x-y plane of 3D space (z = 0).
package geom

import (
	"fmt"
	"math"
	"strconv"

	opt "github.com/repeale/fp-go/option"
)

const (
	// DefaultEpsilon is the tolerance used by ApproxEqual callers that have
	// no better idea.
	DefaultEpsilon = 1e-9

	// Vectors shorter than this are not rescaled by Normalize.
	minNormalizeMagnitude = 1e-6
)

// Vector is a 2- or 3-dimensional vector. The z component is always stored
// and is zero for 2D vectors.
//
// A Vector is never modified after construction, so values may be shared
// between goroutines freely. The zero value is the 2D origin.
type Vector struct {
	x, y, z float64
	is3D    bool
}

// New2 returns the 2D vector (x, y).
func New2(x, y float64) Vector {
	return Vector{x: x, y: y}
}

// New3 returns the 3D vector (x, y, z).
func New3(x, y, z float64) Vector {
	return Vector{x: x, y: y, z: z, is3D: true}
}

// New returns a 3D vector when z is present and a 2D vector otherwise.
func New(x, y float64, z opt.Option[float64]) Vector {
	if opt.IsSome(z) {
		return New3(x, y, z.Value)
	}
	return New2(x, y)
}

// FromSlice builds a vector from two or three components.
func FromSlice(components []float64) (Vector, error) {
	switch len(components) {
	case 2:
		return New2(components[0], components[1]), nil
	case 3:
		return New3(components[0], components[1], components[2]), nil
	}

	return Vector{}, fmt.Errorf(
		"%w: got %d",
		ErrComponentCount,
		len(components),
	)
}

func (v Vector) X() float64 { return v.x }
func (v Vector) Y() float64 { return v.y }
func (v Vector) Z() float64 { return v.z }

// Dim returns 2 or 3.
func (v Vector) Dim() int {
	if v.is3D {
		return 3
	}
	return 2
}

func (v Vector) Is3D() bool { return v.is3D }

func (v Vector) IsZero() bool { return v.x == 0 && v.y == 0 && v.z == 0 }

// Components returns the components the vector presents: two for 2D
// vectors, three for 3D ones.
func (v Vector) Components() []float64 {
	if v.is3D {
		return []float64{v.x, v.y, v.z}
	}
	return []float64{v.x, v.y}
}

// with builds a result of the given shape. z is dropped for 2D results.
func with(is3D bool, x, y, z float64) Vector {
	if is3D {
		return New3(x, y, z)
	}
	return New2(x, y)
}

func (v Vector) Add(o Vector) Vector {
	return with(v.is3D || o.is3D, v.x+o.x, v.y+o.y, v.z+o.z)
}

func (v Vector) Sub(o Vector) Vector {
	return with(v.is3D || o.is3D, v.x-o.x, v.y-o.y, v.z-o.z)
}

// Mul multiplies every component by k.
func (v Vector) Mul(k float64) Vector {
	return with(v.is3D, k*v.x, k*v.y, k*v.z)
}

// Scale is Mul with the scalar on the left: Scale(k, v) == v.Mul(k).
func Scale(k float64, v Vector) Vector {
	return v.Mul(k)
}

// Div divides every component by k. Dividing by zero returns
// ErrDivisionByZero instead of producing infinities.
func (v Vector) Div(k float64) (Vector, error) {
	if k == 0 {
		return Vector{}, ErrDivisionByZero
	}
	return with(v.is3D, v.x/k, v.y/k, v.z/k), nil
}

func (v Vector) Neg() Vector {
	return with(v.is3D, -v.x, -v.y, -v.z)
}

// Dot returns the dot product. 2D vectors contribute z = 0.
func (v Vector) Dot(o Vector) float64 {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

// Cross returns the cross product, which is always a 3D vector. The cross
// product of two 2D vectors points along z.
func (v Vector) Cross(o Vector) Vector {
	return New3(
		v.y*o.z-v.z*o.y,
		v.z*o.x-v.x*o.z,
		v.x*o.y-v.y*o.x,
	)
}

func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
}

// Normalize rescales v to have the given magnitude. Vectors that are
// (nearly) zero are returned as is.
func (v Vector) Normalize(length float64) Vector {
	if mag := v.Magnitude(); mag > minNormalizeMagnitude {
		return v.Mul(length / mag)
	}
	return v
}

func Distance(from, to Vector) float64 {
	return from.Sub(to).Magnitude()
}

// Equal reports whether both vectors have the same dimension and identical
// components.
func (v Vector) Equal(o Vector) bool {
	return v.is3D == o.is3D && v.x == o.x && v.y == o.y && v.z == o.z
}

// ApproxEqual reports whether every stored component differs by at most
// eps. Dimension is ignored, so (1, 2) is approximately (1, 2, 0).
func (v Vector) ApproxEqual(o Vector, eps float64) bool {
	return math.Abs(v.x-o.x) <= eps &&
		math.Abs(v.y-o.y) <= eps &&
		math.Abs(v.z-o.z) <= eps
}

func formatComponent(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (v Vector) format() string {
	if v.is3D {
		return fmt.Sprintf(
			"%s, %s, %s",
			formatComponent(v.x),
			formatComponent(v.y),
			formatComponent(v.z),
		)
	}
	return fmt.Sprintf(
		"%s, %s",
		formatComponent(v.x),
		formatComponent(v.y),
	)
}

// String formats the vector as "(x, y)" or "(x, y, z)".
func (v Vector) String() string {
	return "(" + v.format() + ")"
}

// GoString formats the vector as "Vector(x, y)" or "Vector(x, y, z)".
// It is used by the %#v verb.
func (v Vector) GoString() string {
	return "Vector(" + v.format() + ")"
}
