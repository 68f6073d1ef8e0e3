package geom

import (
	"fmt"
	"sync"
	"testing"

	opt "github.com/repeale/fp-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = []Vector{
	New2(0, 0),
	New2(1, 2),
	New2(-3.5, 0.25),
	New3(3, 5, 9),
	New3(-1, 0.5, -2),
	New3(1e3, -1e-3, 7),
}

func TestConstruction(t *testing.T) {
	u := New2(1, 2)
	assert.Equal(t, 2, u.Dim())
	assert.False(t, u.Is3D())
	assert.Equal(t, 0.0, u.Z())

	v := New3(3, 5, 9)
	assert.Equal(t, 3, v.Dim())
	assert.Equal(t, 9.0, v.Z())

	assert.True(t, New(1, 2, opt.None[float64]()).Equal(u))
	assert.True(t, New(3, 5, opt.Some(9.0)).Equal(v))

	// 3D with an explicit zero is still 3D
	assert.Equal(t, 3, New(1, 2, opt.Some(0.0)).Dim())

	assert.Equal(t, 2, Vector{}.Dim())
	assert.True(t, Vector{}.IsZero())
}

func TestFromSlice(t *testing.T) {
	v, err := FromSlice([]float64{1, 2})
	require.NoError(t, err)
	assert.True(t, v.Equal(New2(1, 2)))

	v, err = FromSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, v.Equal(New3(1, 2, 3)))
	assert.Equal(t, []float64{1, 2, 3}, v.Components())

	for _, bad := range [][]float64{nil, {1}, {1, 2, 3, 4}} {
		_, err = FromSlice(bad)
		assert.ErrorIs(t, err, ErrComponentCount)
	}
}

func TestFormatting(t *testing.T) {
	u := New2(1, 2)
	v := New3(3, 5, 9)

	assert.Equal(t, "(1, 2)", u.String())
	assert.Equal(t, "(3, 5, 9)", v.String())
	assert.Equal(t, "Vector(1, 2)", u.GoString())
	assert.Equal(t, "Vector(3, 5, 9)", v.GoString())

	assert.Equal(t, "(0.5, -1.25)", New2(0.5, -1.25).String())
	assert.Equal(t, "(1, 2) Vector(3, 5, 9)", fmt.Sprintf("%v %#v", u, v))
}

func TestAddSub(t *testing.T) {
	// 2D with 2D stays 2D
	sum := New2(1, 2).Add(New2(3, 4))
	assert.Equal(t, 2, sum.Dim())
	assert.True(t, sum.Equal(New2(4, 6)))

	diff := New2(1, 2).Sub(New2(3, 4))
	assert.Equal(t, 2, diff.Dim())
	assert.True(t, diff.Equal(New2(-2, -2)))

	// 2D with 3D promotes, in either order
	u := New2(1, 2)
	v := New3(3, 5, 9)
	assert.True(t, u.Add(v).Equal(New3(4, 7, 9)))
	assert.True(t, v.Add(u).Equal(New3(4, 7, 9)))
	assert.True(t, u.Sub(v).Equal(New3(-2, -3, -9)))
	assert.True(t, v.Sub(u).Equal(New3(2, 3, 9)))

	for _, a := range samples {
		for _, b := range samples {
			sum := a.Add(b)
			assert.Equal(t, a.Is3D() || b.Is3D(), sum.Is3D())
			assert.Equal(t, a.X()+b.X(), sum.X())
			assert.Equal(t, a.Y()+b.Y(), sum.Y())
			assert.Equal(t, a.Z()+b.Z(), sum.Z())
		}
	}
}

func TestScalarMultiplication(t *testing.T) {
	u := New2(1, 2)
	assert.True(t, u.Mul(2.0).Equal(New2(2, 4)))
	assert.True(t, Scale(2.0, u).Equal(New2(2, 4)))
	assert.True(t, New3(1, 2, 3).Mul(-1).Equal(New3(-1, -2, -3)))

	for _, v := range samples {
		for _, k := range []float64{0, 1, -2, 0.5, 3.75} {
			assert.True(t, Scale(k, v).Equal(v.Mul(k)), "%v * %v", k, v)
			assert.Equal(t, v.Dim(), v.Mul(k).Dim())
		}
	}
}

func TestDivision(t *testing.T) {
	q, err := New2(1, 2).Div(5.0)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Dim())
	assert.True(t, q.ApproxEqual(New2(0.2, 0.4), DefaultEpsilon))
	assert.Equal(t, "(0.2, 0.4)", q.String())

	_, err = New3(1, 2, 3).Div(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	for _, v := range samples {
		for _, k := range []float64{1, -2, 0.5, 3} {
			q, err := v.Div(k)
			require.NoError(t, err)
			assert.True(t, q.Mul(k).ApproxEqual(v, DefaultEpsilon), "%v / %v", v, k)
			assert.Equal(t, v.Dim(), q.Dim())
		}
	}
}

func TestDot(t *testing.T) {
	assert.Equal(t, 13.0, New3(1, 2, 0).Dot(New3(3, 5, 9)))
	assert.Equal(t, 13.0, New2(1, 2).Dot(New3(3, 5, 9)))
	assert.Equal(t, 11.0, New2(1, 2).Dot(New2(3, 4)))

	// (a + b) @ c == a @ c + b @ c
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				assert.InDelta(t, a.Dot(c)+b.Dot(c), a.Add(b).Dot(c), 1e-6)
			}
		}
	}
}

func TestCross(t *testing.T) {
	z := New2(1, 0).Cross(New2(0, 1))
	assert.Equal(t, 3, z.Dim())
	assert.True(t, z.Equal(New3(0, 0, 1)))

	assert.True(t, New3(1, 2, 0).Cross(New3(3, 5, 9)).Equal(New3(18, -9, -1)))
	assert.True(t, New2(1, 2).Cross(New3(3, 5, 9)).Equal(New3(18, -9, -1)))

	for _, a := range samples {
		for _, b := range samples {
			c := a.Cross(b)
			assert.True(t, c.Is3D())
			// perpendicular to both operands
			assert.InDelta(t, 0, c.Dot(a), 1e-6)
			assert.InDelta(t, 0, c.Dot(b), 1e-6)
		}
	}
}

func TestNeg(t *testing.T) {
	assert.True(t, New2(1, -2).Neg().Equal(New2(-1, 2)))
	assert.True(t, New3(1, -2, 3).Neg().Equal(New3(-1, 2, -3)))

	for _, v := range samples {
		assert.True(t, v.Neg().Neg().Equal(v))
		assert.Equal(t, v.Dim(), v.Neg().Dim())
	}
}

func TestMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, New2(3, 4).Magnitude())
	assert.Equal(t, 3.0, New3(1, 2, 2).Magnitude())
	assert.Equal(t, 0.0, Vector{}.Magnitude())

	assert.Equal(t, 5.0, Distance(New2(1, 1), New2(4, 5)))

	n := New3(3, 0, 4).Normalize(1)
	assert.InDelta(t, 1.0, n.Magnitude(), 1e-12)
	assert.True(t, n.ApproxEqual(New3(0.6, 0, 0.8), DefaultEpsilon))

	// too short to have a direction
	assert.True(t, New2(1e-9, 0).Normalize(1).Equal(New2(1e-9, 0)))
}

func TestEquality(t *testing.T) {
	assert.True(t, New2(1, 2).Equal(New2(1, 2)))
	assert.False(t, New2(1, 2).Equal(New3(1, 2, 0)))
	assert.True(t, New2(1, 2).ApproxEqual(New3(1, 2, 0), 0))
	assert.True(t, New2(1, 2).ApproxEqual(New2(1+1e-12, 2), DefaultEpsilon))
	assert.False(t, New2(1, 2).ApproxEqual(New2(1.1, 2), DefaultEpsilon))
}

func TestScenario(t *testing.T) {
	u := New2(1, 2)
	v := New3(3, 5, 9)

	assert.Equal(t, "(4, 7, 9)", u.Add(v).String())
	assert.Equal(t, "(-2, -3, -9)", u.Sub(v).String())
	assert.Equal(t, "(2, 4)", Scale(2.0, u).String())
	assert.Equal(t, "(2, 4)", u.Mul(2.0).String())

	q, err := u.Div(5.0)
	require.NoError(t, err)
	assert.Equal(t, "(0.2, 0.4)", q.String())

	assert.Equal(t, 13.0, u.Dot(v))
	assert.Equal(t, "(18, -9, -1)", u.Cross(v).String())
	assert.InDelta(t, 2.2360679775, u.Magnitude(), 1e-9)
}

func TestConcurrentUse(t *testing.T) {
	u := New2(1, 2)
	v := New3(3, 5, 9)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = u.Add(v).Cross(u).Mul(2).Magnitude()
			}
		}()
	}
	wg.Wait()

	assert.True(t, u.Equal(New2(1, 2)))
	assert.True(t, v.Equal(New3(3, 5, 9)))
}
