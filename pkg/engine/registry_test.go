package engine

import "testing"

func TestImplementationRegistry(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("compact", func() *Engine { return New(WithType("compact")) }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register("compact", func() *Engine { return nil }); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := r.Register("", func() *Engine { return nil }); err == nil {
		t.Fatal("expected error for empty name")
	}
	if err := r.Register("nilfactory", nil); err == nil {
		t.Fatal("expected error for nil factory")
	}

	factory, err := r.Get("compact")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := factory().Type(); got != "compact" {
		t.Fatalf("factory engine type = %q, want compact", got)
	}

	if _, err := r.Get("missing"); err == nil {
		t.Fatal("expected error for unknown implementation")
	}

	names := r.List()
	if len(names) != 1 || names[0] != "compact" {
		t.Fatalf("List = %v", names)
	}
}
