package animation

import (
	"github.com/lixenwraith/reel/render"
	"github.com/lixenwraith/reel/vmath"
)

// BasicAnimation draws itself at a caller-supplied shape
type BasicAnimation[S any] interface {
	Draw(target render.Target, shape S) error
}

// ContainedAnimation owns its placement, callers draw without re-supplying a shape
type ContainedAnimation[S, Size any] interface {
	Draw(target render.Target) error
	SetPosition(p vmath.Vec2)
	SetSize(size Size)
	DrawShape() S
	Position() vmath.Vec2
	Size() Size
}

// Container binds an animation of concrete type A to a mutable shape
// The container only offers Reset itself; animation.Reset, animation.SetState and
// animation.State reach the wrapped animation through Unwrap, so use those instead
// of asserting Resettable or EditableState on a container
type Container[A BasicAnimation[S], S, Size any] struct {
	anim  A
	shape vmath.Shape[S, Size]
}

// Contain wraps anim with shape; the container takes ownership of both
func Contain[A BasicAnimation[S], S, Size any](anim A, shape vmath.Shape[S, Size]) *Container[A, S, Size] {
	return &Container[A, S, Size]{anim: anim, shape: shape}
}

// ContainRect wraps anim with a copy of r
func ContainRect[A BasicAnimation[vmath.Rect]](anim A, r vmath.Rect) *Container[A, vmath.Rect, vmath.Vec2] {
	return Contain[A, vmath.Rect, vmath.Vec2](anim, &r)
}

// ContainCircle wraps anim with a copy of c
func ContainCircle[A BasicAnimation[vmath.Circle]](anim A, c vmath.Circle) *Container[A, vmath.Circle, float64] {
	return Contain[A, vmath.Circle, float64](anim, &c)
}

// Draw renders the wrapped animation at a snapshot of the held shape
func (c *Container[A, S, Size]) Draw(target render.Target) error {
	return c.anim.Draw(target, c.shape.Snapshot())
}

func (c *Container[A, S, Size]) SetPosition(p vmath.Vec2) { c.shape.SetPosition(p) }
func (c *Container[A, S, Size]) SetSize(size Size)        { c.shape.SetSize(size) }
func (c *Container[A, S, Size]) Position() vmath.Vec2     { return c.shape.Position() }
func (c *Container[A, S, Size]) Size() Size               { return c.shape.Size() }

// DrawShape returns a copy of the shape the next Draw will use
func (c *Container[A, S, Size]) DrawShape() S {
	return c.shape.Snapshot()
}

// Unpack returns the animation with its concrete type and the shape, so both can
// be driven independently. The container must not be used afterwards
func (c *Container[A, S, Size]) Unpack() (A, S) {
	anim, shape := c.anim, c.shape.Snapshot()
	var zero A
	c.anim, c.shape = zero, nil
	return anim, shape
}

// Unwrap exposes the wrapped animation for capability lookup, nil once unpacked
func (c *Container[A, S, Size]) Unwrap() any {
	if c.shape == nil {
		return nil
	}
	return c.anim
}

// Reset forwards to the wrapped animation, ErrNotSupported if it cannot be reset
func (c *Container[A, S, Size]) Reset() error {
	return Reset(c.Unwrap())
}

var _ ContainedAnimation[vmath.Rect, vmath.Vec2] = (*Container[*Linear[Frames, vmath.Rect], vmath.Rect, vmath.Vec2])(nil)
