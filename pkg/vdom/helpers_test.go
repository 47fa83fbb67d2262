package vdom

import "testing"

func TestText(t *testing.T) {
	node := Text("hello")
	if node.Kind != KindText || node.Text != "hello" {
		t.Errorf("Text() = %+v, want text node %q", node, "hello")
	}
}

func TestTextf(t *testing.T) {
	node := Textf("%d items", 3)
	if node.Text != "3 items" {
		t.Errorf("Textf() = %q, want %q", node.Text, "3 items")
	}
}

func TestRaw(t *testing.T) {
	node := Raw("<svg></svg>")
	if node.Kind != KindRaw {
		t.Errorf("Kind = %v, want Raw", node.Kind)
	}
	if node.Text != "<svg></svg>" {
		t.Errorf("Text = %q, want markup unchanged", node.Text)
	}
}

func TestFragment(t *testing.T) {
	frag := Fragment(Span("a"), nil, "b", []*VNode{Span("c")})

	if frag.Kind != KindFragment {
		t.Fatalf("Kind = %v, want Fragment", frag.Kind)
	}
	if len(frag.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(frag.Children))
	}
}

func TestIfElse(t *testing.T) {
	yes := Span("yes")
	no := Span("no")

	if got := IfElse(true, yes, no); got != yes {
		t.Error("IfElse(true) should return first node")
	}
	if got := IfElse(false, yes, no); got != no {
		t.Error("IfElse(false) should return second node")
	}
}

func TestWhen(t *testing.T) {
	called := false
	node := When(false, func() *VNode {
		called = true
		return Span("x")
	})
	if node != nil || called {
		t.Error("When(false) should not call fn")
	}

	node = When(true, func() *VNode { return Span("x") })
	if node == nil {
		t.Error("When(true) should return fn result")
	}
}

func TestMapPreservesOrder(t *testing.T) {
	items := []string{"first", "second", "third"}
	nodes := Map(items, func(s string) *VNode { return Li(s) })

	if len(nodes) != len(items) {
		t.Fatalf("len(nodes) = %d, want %d", len(nodes), len(items))
	}
	for i, node := range nodes {
		if node.Children[0].Text != items[i] {
			t.Errorf("nodes[%d] text = %q, want %q", i, node.Children[0].Text, items[i])
		}
	}
}

func TestMapDropsNil(t *testing.T) {
	items := []int{1, 2, 3, 4}
	nodes := Map(items, func(n int) *VNode {
		if n%2 == 0 {
			return nil
		}
		return Textf("%d", n)
	})

	if len(nodes) != 2 {
		t.Fatalf("len(nodes) = %d, want 2", len(nodes))
	}
}

func TestMapEmptyInput(t *testing.T) {
	nodes := Map([]string{}, func(s string) *VNode { return Li(s) })
	if len(nodes) != 0 {
		t.Errorf("len(nodes) = %d, want 0", len(nodes))
	}
}

func TestMapIndexed(t *testing.T) {
	nodes := MapIndexed([]string{"a", "b"}, func(i int, s string) *VNode {
		return Textf("%d:%s", i, s)
	})
	if nodes[0].Text != "0:a" || nodes[1].Text != "1:b" {
		t.Errorf("MapIndexed = [%q, %q], want [0:a, 1:b]", nodes[0].Text, nodes[1].Text)
	}
}
