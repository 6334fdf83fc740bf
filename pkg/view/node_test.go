package view

import "testing"

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode(nil, 10, 20, 200, 100)

	tests := []struct {
		prop Property
		want float64
	}{
		{Alpha, 1},
		{ScaleX, 1},
		{ScaleY, 1},
		{Rotation, 0},
		{TranslationX, 0},
		{PivotX, 100},
		{PivotY, 50},
	}
	for _, tt := range tests {
		if got := n.Property(tt.prop); got != tt.want {
			t.Errorf("Property(%v) = %v, want %v", tt.prop, got, tt.want)
		}
	}

	g := n.Geometry()
	if g.Right != 210 || g.Bottom != 120 {
		t.Errorf("frame = (%d,%d,%d,%d), want (10,20,210,120)", g.Left, g.Top, g.Right, g.Bottom)
	}
	if n.Visibility() != Visible {
		t.Errorf("Visibility() = %v, want visible", n.Visibility())
	}
}

func TestNodeParentIsGroup(t *testing.T) {
	root := NewNode(nil, 0, 0, 400, 800)
	child := NewNode(root, 0, 0, 10, 10)

	g, ok := child.Parent().(Group)
	if !ok {
		t.Fatal("expected node parent to satisfy Group")
	}
	if g.Geometry().Height != 800 {
		t.Errorf("parent height = %d, want 800", g.Geometry().Height)
	}
}

func TestNodeDetach(t *testing.T) {
	n := NewNode(nil, 0, 0, 1, 1)
	if !n.Attached() {
		t.Error("new node should be attached")
	}
	n.Detach()
	if n.Attached() {
		t.Error("detached node reports attached")
	}
}

func TestPropertyString(t *testing.T) {
	if got := TranslationY.String(); got != "translationY" {
		t.Errorf("TranslationY.String() = %q", got)
	}
	if got := Property(99).String(); got != "Property(99)" {
		t.Errorf("Property(99).String() = %q", got)
	}
	if len(Properties()) != 10 {
		t.Errorf("len(Properties()) = %d, want 10", len(Properties()))
	}
}

func TestGeometryContains(t *testing.T) {
	g := NewNode(nil, 10, 10, 20, 20).Geometry()
	if !g.Contains(10, 10) || !g.Contains(29, 29) {
		t.Error("expected corners inside frame")
	}
	if g.Contains(30, 15) || g.Contains(5, 15) {
		t.Error("expected points outside frame")
	}
}

func TestNodeIsNil(t *testing.T) {
	var missing *Node
	var v View = missing
	if v == nil {
		t.Fatal("typed nil view compared equal to nil")
	}
	if !v.(interface{ IsNil() bool }).IsNil() {
		t.Error("IsNil() = false for a nil *Node")
	}
	if NewNode(nil, 0, 0, 1, 1).IsNil() {
		t.Error("IsNil() = true for a live node")
	}
}
