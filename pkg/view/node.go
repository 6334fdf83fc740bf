package view

// Node is an in-memory [View] that also satisfies [Group].
//
// Property values start at the platform defaults: alpha and scale 1, pivot at
// the measured center, everything else 0. A Node is attached until Detach is
// called; detached nodes report Attached() == false so holders of stale
// references can skip them.
type Node struct {
	geometry   Geometry
	parent     any
	props      [propertyCount]float64
	visibility Visibility
	detached   bool
}

// NewNode creates a node of the given size positioned at (left, top) within
// parent. Measured size equals the laid-out size.
func NewNode(parent any, left, top, width, height int) *Node {
	n := &Node{parent: parent}
	n.SetGeometry(Geometry{
		Width:          width,
		Height:         height,
		MeasuredWidth:  width,
		MeasuredHeight: height,
		Left:           left,
		Top:            top,
		Right:          left + width,
		Bottom:         top + height,
	})
	n.props[Alpha] = 1
	n.props[ScaleX] = 1
	n.props[ScaleY] = 1
	n.props[PivotX] = float64(width) / 2
	n.props[PivotY] = float64(height) / 2
	return n
}

// IsNil reports whether n is a nil *Node, which a View interface holding it
// does not compare equal to.
func (n *Node) IsNil() bool {
	return n == nil
}

// Geometry implements View.
func (n *Node) Geometry() Geometry {
	return n.geometry
}

// SetGeometry replaces the layout snapshot, e.g. after a relayout.
func (n *Node) SetGeometry(g Geometry) {
	n.geometry = g
}

// SetPadding updates padding only.
func (n *Node) SetPadding(p EdgeInsets) {
	n.geometry.Padding = p
}

// Parent implements View.
func (n *Node) Parent() any {
	return n.parent
}

// SetParent re-parents the node.
func (n *Node) SetParent(parent any) {
	n.parent = parent
}

// Property implements View.
func (n *Node) Property(p Property) float64 {
	if p < 0 || p >= propertyCount {
		return 0
	}
	return n.props[p]
}

// SetProperty implements View. Unknown properties are ignored.
func (n *Node) SetProperty(p Property, value float64) {
	if p < 0 || p >= propertyCount {
		return
	}
	n.props[p] = value
}

// Visibility implements View.
func (n *Node) Visibility() Visibility {
	return n.visibility
}

// SetVisibility implements View.
func (n *Node) SetVisibility(v Visibility) {
	n.visibility = v
}

// Attached reports whether the node is still part of a live tree.
func (n *Node) Attached() bool {
	return !n.detached
}

// Detach marks the node as removed from its tree.
func (n *Node) Detach() {
	n.detached = true
}

// Snapshot returns every property value keyed by property.
func (n *Node) Snapshot() map[Property]float64 {
	out := make(map[Property]float64, propertyCount)
	for _, p := range Properties() {
		out[p] = n.props[p]
	}
	return out
}
