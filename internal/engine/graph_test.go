package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGraph_Register(t *testing.T) {
	g := New()

	node, err := g.Register([]string{"a", "b"}, []string{"c"}, noop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.Len() != 1 {
		t.Errorf("expected 1 node, got %d", g.Len())
	}
	if node.Name() != "node-0" {
		t.Errorf("expected generated name node-0, got %s", node.Name())
	}
	if node.ID() == "" {
		t.Error("node should have an ID")
	}
	if node.Index() != 0 {
		t.Errorf("expected index 0, got %d", node.Index())
	}

	// Accessors возвращают копии
	in := node.Inputs()
	in[0] = "mutated"
	if node.Inputs()[0] != "a" {
		t.Error("node inputs must not change through accessor")
	}
}

func TestGraph_DuplicateOutput(t *testing.T) {
	g := New()
	g.MustRegister([]string{"a", "b"}, []string{"c"}, noop)

	_, err := g.Register([]string{"c"}, []string{"c"}, noop)
	if !errors.Is(err, ErrDuplicateOutput) {
		t.Fatalf("expected ErrDuplicateOutput, got %v", err)
	}
	if !strings.Contains(err.Error(), "c output already exist") {
		t.Errorf("unexpected message: %s", err.Error())
	}

	// Неудачная регистрация не меняет граф
	if g.Len() != 1 {
		t.Errorf("expected 1 node after failed register, got %d", g.Len())
	}
}

func TestGraph_DuplicateOutputWithinNode(t *testing.T) {
	g := New()

	_, err := g.Register([]string{"a"}, []string{"x", "x"}, noop)
	if !errors.Is(err, ErrDuplicateOutput) {
		t.Fatalf("expected ErrDuplicateOutput, got %v", err)
	}
	if g.Len() != 0 {
		t.Errorf("expected empty graph, got %d nodes", g.Len())
	}
}

func TestGraph_NilFunc(t *testing.T) {
	_, err := New().Add(NodeDef{Name: "broken", Inputs: []string{"a"}, Outputs: []string{"b"}})
	if !errors.Is(err, ErrGraphDefinition) {
		t.Errorf("expected ErrGraphDefinition, got %v", err)
	}
}

func TestGraph_MustRegisterPanics(t *testing.T) {
	g := New()
	g.MustRegister([]string{"a"}, []string{"b"}, noop)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrDuplicateOutput) {
			t.Errorf("expected ErrDuplicateOutput panic, got %v", r)
		}
	}()
	g.MustRegister([]string{"x"}, []string{"b"}, noop)
}

func TestGraph_DerivedNames(t *testing.T) {
	g := New()
	g.MustRegister([]string{"a", "b"}, []string{"c"}, noop)
	g.MustRegister([]string{"d", "a"}, []string{"e"}, noop)
	g.MustRegister([]string{"c"}, []string{"d"}, noop)

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"outputs", g.Outputs(), []string{"c", "d", "e"}},
		{"inputs", g.Inputs(), []string{"a", "b", "c", "d"}},
		{"required", g.RequiredInputs(), []string{"a", "b"}},
		{"terminal", g.TerminalOutputs(), []string{"e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGraph_NodesInRegistrationOrder(t *testing.T) {
	g := New()
	for _, name := range []string{"z", "a", "m"} {
		addNode(t, g, name, []string{"in_" + name}, []string{"out_" + name})
	}

	if got := strings.Join(names(g.Nodes()), ","); got != "z,a,m" {
		t.Errorf("expected z,a,m, got %s", got)
	}
}

func TestFormatNames(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, "[]"},
		{[]string{"b"}, "['b']"},
		{[]string{"a", "b"}, "['a', 'b']"},
	}
	for _, tt := range tests {
		if got := FormatNames(tt.in); got != tt.want {
			t.Errorf("FormatNames(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
