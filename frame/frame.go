// Package frame generates synthetic 2D point clouds tracing the outline of a
// square centred at the origin. The output is intended as toy training data
// for classifier demos.
package frame

import "fmt"

// Frame holds the generated points as parallel coordinate slices.
// Point i is (X[i], Y[i]). Points are grouped by side in the order bottom,
// top, left, right; consecutive indices do not form a connected path.
type Frame struct {
	X []float64
	Y []float64
}

// Len returns the number of points in the frame.
func (f Frame) Len() int {
	return len(f.X)
}

// XY returns the coordinates of point i.
// Len and XY let a Frame be passed anywhere a plotter.XYer is accepted.
func (f Frame) XY(i int) (x, y float64) {
	return f.X[i], f.Y[i]
}

// Side reports which side of the square point i was generated for.
// It panics if i is out of range.
func (f Frame) Side(i int) Side {
	n := f.Len() / 4
	if i < 0 || i >= 4*n {
		panic(fmt.Sprintf("frame: point index %d out of range [0, %d)", i, 4*n))
	}
	return Side(i / n)
}

// Side identifies one of the four sides of the square.
type Side int

const (
	Bottom Side = iota // y = -size/2, jittered in y
	Top                // y = +size/2, jittered in y
	Left               // x = -size/2, jittered in x
	Right              // x = +size/2, jittered in x
)

func (s Side) String() string {
	switch s {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}
