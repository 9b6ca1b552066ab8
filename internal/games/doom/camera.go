package doom

import "github.com/raygrid/arcade/internal/core"

// Camera is the player pose: position in map cells, a view direction and the
// camera plane. The plane is always perpendicular to the direction; its
// magnitude sets the field of view (0.66 ≈ 66°).
type Camera struct {
	Pos   core.Vec2
	Dir   core.Vec2
	Plane core.Vec2
}

// NewCamera places a camera at pos facing dir (expected unit-ish) with the
// given field-of-view scale. The plane is derived perpendicular to dir, so
// the invariant holds from the first frame.
func NewCamera(pos, dir core.Vec2, fovScale float64) Camera {
	return Camera{
		Pos:   pos,
		Dir:   dir,
		Plane: core.Vec2{X: -dir.Y, Y: dir.X}.Scale(fovScale),
	}
}

// Rotate turns the camera by angle radians. Direction and plane rotate
// together, which preserves both their perpendicularity and the plane
// magnitude, so the field of view is constant under rotation.
func (c *Camera) Rotate(angle float64) {
	c.Dir = c.Dir.Rotate(angle)
	c.Plane = c.Plane.Rotate(angle)
}

// move applies a world-space displacement with per-axis collision: each axis
// advances only if its target cell is walkable. Blocking one axis leaves the
// other free, so the player slides along walls. Grid.At treats out-of-range
// cells as walls, so movement can never escape the map.
func (c *Camera) move(g *Grid, delta core.Vec2) {
	nx := c.Pos.X + delta.X
	if !g.IsWall(int(nx), int(c.Pos.Y)) {
		c.Pos.X = nx
	}
	ny := c.Pos.Y + delta.Y
	if !g.IsWall(int(c.Pos.X), int(ny)) {
		c.Pos.Y = ny
	}
}

// Forward walks along the view direction.
func (c *Camera) Forward(g *Grid, step float64) {
	c.move(g, c.Dir.Scale(step))
}

// Backward walks against the view direction.
func (c *Camera) Backward(g *Grid, step float64) {
	c.move(g, c.Dir.Scale(-step))
}

// StrafeLeft sidesteps perpendicular to the view direction.
func (c *Camera) StrafeLeft(g *Grid, step float64) {
	c.move(g, core.Vec2{X: c.Dir.Y, Y: -c.Dir.X}.Scale(step))
}

// StrafeRight sidesteps perpendicular to the view direction.
func (c *Camera) StrafeRight(g *Grid, step float64) {
	c.move(g, core.Vec2{X: -c.Dir.Y, Y: c.Dir.X}.Scale(step))
}

// Cell returns the map cell containing the camera.
func (c *Camera) Cell() (int, int) {
	return int(c.Pos.X), int(c.Pos.Y)
}
