package steps

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shaiso/calcgraph/internal/engine"
)

// Registry Tests

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	// Пустой реестр
	if r.Count() != 0 {
		t.Errorf("expected empty registry")
	}

	// Регистрация
	r.Register(FuncAdd, NewAdd)
	if r.Count() != 1 {
		t.Errorf("expected 1 function, got %d", r.Count())
	}

	// Получение
	if _, err := r.Get(FuncAdd); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// Несуществующая функция
	_, err := r.Get("unknown")
	if !errors.Is(err, ErrStepNotFound) {
		t.Errorf("expected ErrStepNotFound, got %v", err)
	}

	// Has
	if !r.Has(FuncAdd) {
		t.Error("should have add")
	}
	if r.Has("unknown") {
		t.Error("should not have unknown")
	}

	// Unregister
	r.Unregister(FuncAdd)
	if r.Has(FuncAdd) {
		t.Error("should not have add after unregister")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	want := []string{"add", "concat", "div", "divmod", "fromjson", "identity", "mul", "neg", "scale", "sub", "template"}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func build(t *testing.T, name string, inputs, outputs []string, params map[string]any) engine.Func {
	t.Helper()
	fn, err := DefaultRegistry().Build(name, NewConfig(inputs, outputs, params))
	if err != nil {
		t.Fatalf("build %s: %v", name, err)
	}
	return fn
}

// Arithmetic Tests

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		fn     string
		inputs []string
		params map[string]any
		args   []any
		want   any
	}{
		{"add", FuncAdd, []string{"a", "b", "c"}, nil, []any{1, 2.5, int64(3)}, 6.5},
		{"add single", FuncAdd, []string{"a"}, nil, []any{4}, 4.0},
		{"sub", FuncSub, []string{"d", "a"}, nil, []any{0.5, 2}, -1.5},
		{"mul", FuncMul, []string{"a", "b"}, nil, []any{3, 4}, 12.0},
		{"neg", FuncNeg, []string{"a"}, nil, []any{2}, -2.0},
		{"scale", FuncScale, []string{"a"}, map[string]any{"factor": 0.1}, []any{5}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := build(t, tt.fn, tt.inputs, []string{"out"}, tt.params)
			got, err := fn(tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDiv(t *testing.T) {
	fn := build(t, FuncDiv, []string{"a", "b"}, []string{"c"}, nil)

	got, err := fn(1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}

	_, err = fn(1, 0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestDivmod(t *testing.T) {
	fn := build(t, FuncDivmod, []string{"a", "b"}, []string{"q", "r"}, nil)

	got, err := fn(7, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]any{3.0, 1.0}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestArithmetic_InvalidArgument(t *testing.T) {
	fn := build(t, FuncAdd, []string{"a", "b"}, []string{"c"}, nil)

	_, err := fn(1, "two")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		fn      string
		inputs  []string
		outputs []string
		params  map[string]any
	}{
		{"sub one input", FuncSub, []string{"a"}, []string{"c"}, nil},
		{"add no inputs", FuncAdd, nil, []string{"c"}, nil},
		{"divmod one output", FuncDivmod, []string{"a", "b"}, []string{"q"}, nil},
		{"scale without factor", FuncScale, []string{"a"}, []string{"b"}, nil},
		{"scale with text factor", FuncScale, []string{"a"}, []string{"b"}, map[string]any{"factor": "x"}},
		{"template without text", FuncTemplate, []string{"a"}, []string{"b"}, nil},
		{"neg two outputs", FuncNeg, []string{"a"}, []string{"b", "c"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultRegistry().Build(tt.fn, NewConfig(tt.inputs, tt.outputs, tt.params))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

// Data Tests

func TestConcat(t *testing.T) {
	fn := build(t, FuncConcat, []string{"a", "b", "c"}, []string{"s"}, map[string]any{"sep": "-"})

	got, err := fn("x", 2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "x-2-true" {
		t.Errorf("expected x-2-true, got %v", got)
	}
}

func TestIdentity(t *testing.T) {
	fn := build(t, FuncIdentity, []string{"a"}, []string{"b"}, nil)

	v := map[string]any{"k": 1}
	got, err := fn(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(v, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFromJSON(t *testing.T) {
	fn := build(t, FuncFromJSON, []string{"raw"}, []string{"v"}, nil)

	tests := []struct {
		in   string
		want any
	}{
		{`{"a": 1}`, map[string]any{"a": 1.0}},
		{`[1, "x"]`, []any{1.0, "x"}},
		{`42`, 42.0},
		{`true`, true},
		{`plain`, "plain"},
	}
	for _, tt := range tests {
		got, err := fn(tt.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tt.in, diff)
		}
	}

	if _, err := fn(5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

// Template Tests

func TestTemplate(t *testing.T) {
	fn := build(t, FuncTemplate, []string{"first", "last"}, []string{"full"}, map[string]any{
		"text": "{{ .first }} {{ .last | upper }}",
	})

	got, err := fn("ada", "lovelace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ada LOVELACE" {
		t.Errorf("expected 'ada LOVELACE', got %v", got)
	}
}

func TestTemplate_Parse(t *testing.T) {
	fn := build(t, FuncTemplate, []string{"items"}, []string{"count"}, map[string]any{
		"text":  "{{ len .items }}",
		"parse": true,
	})

	got, err := fn([]any{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3.0 {
		t.Errorf("expected 3, got %v (%T)", got, got)
	}
}

func TestTemplate_Errors(t *testing.T) {
	_, err := DefaultRegistry().Build(FuncTemplate, NewConfig(
		[]string{"a"}, []string{"b"}, map[string]any{"text": "{{ .a "},
	))
	if !errors.Is(err, ErrTemplateParse) {
		t.Errorf("expected ErrTemplateParse, got %v", err)
	}

	fn := build(t, FuncTemplate, []string{"a"}, []string{"b"}, map[string]any{"text": "{{ .missing }}"})
	if _, err := fn(1); !errors.Is(err, ErrTemplateRender) {
		t.Errorf("expected ErrTemplateRender, got %v", err)
	}
}

// Integration with engine

func TestCatalogInGraph(t *testing.T) {
	r := DefaultRegistry()
	g := engine.New()

	add, _ := r.Build(FuncAdd, NewConfig([]string{"a", "b"}, []string{"c"}, nil))
	divmod, _ := r.Build(FuncDivmod, NewConfig([]string{"c", "b"}, []string{"q", "rem"}, nil))
	g.MustRegister([]string{"a", "b"}, []string{"c"}, add)
	g.MustRegister([]string{"c", "b"}, []string{"q", "rem"}, divmod)

	res, err := g.Run(context.Background(), map[string]any{"a": 4, "b": 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"q": 2.0, "rem": 1.0}, res.Value); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
