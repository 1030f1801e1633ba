package viewer

import "github.com/achilleasa/eglview/graphics"

// Data passed to nodes while drawing.
type RenderContext struct {
	Camera *Camera
	State  *graphics.State
	Stamp  FrameStamp
}

// A scene graph node.
type Node interface {
	// Advance node state to the given frame.
	Update(stamp *FrameStamp)

	// Issue draw calls. The camera's graphics context is current.
	Draw(rc *RenderContext) error
}

// A node that groups other nodes. Children are updated and drawn in
// insertion order.
type Group struct {
	children []Node
}

// Create a group with the given children.
func NewGroup(children ...Node) *Group {
	return &Group{children: children}
}

// Append a child node.
func (g *Group) AddChild(n Node) {
	g.children = append(g.children, n)
}

func (g *Group) NumChildren() int {
	return len(g.children)
}

func (g *Group) Update(stamp *FrameStamp) {
	for _, child := range g.children {
		child.Update(stamp)
	}
}

func (g *Group) Draw(rc *RenderContext) error {
	for _, child := range g.children {
		if err := child.Draw(rc); err != nil {
			return err
		}
	}
	return nil
}
