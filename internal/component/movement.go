// internal/component/movement.go
package component

// Vector — позиция или смещение в пикселях игрового поля.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector    { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector    { return Vector{v.X - o.X, v.Y - o.Y} }
func (v Vector) Scale(k float64) Vector { return Vector{v.X * k, v.Y * k} }

// Rect — прямоугольник с левым верхним углом в X, Y.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) Center() Vector  { return Vector{r.X + r.W/2, r.Y + r.H/2} }

// Overlaps reports whether the rectangles share any area. Containment counts.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// MovementIntent is the raw directional input. Index 0 is the negative
// direction (left/up), index 1 the positive one (right/down).
type MovementIntent struct {
	MoveX [2]int
	MoveY [2]int
}

// DX returns -1, 0 or 1.
func (m MovementIntent) DX() int { return m.MoveX[1] - m.MoveX[0] }

// DY returns -1, 0 or 1.
func (m MovementIntent) DY() int { return m.MoveY[1] - m.MoveY[0] }
