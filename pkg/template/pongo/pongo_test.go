package pongo

import (
	"strings"
	"testing"

	"github.com/goliatone/go-microformat/pkg/engine"
	"github.com/goliatone/go-microformat/pkg/spec"
)

func TestNewRendersEntryContext(t *testing.T) {
	template, err := New(`<dt>{{ label }}</dt><dd{{ attrs|safe }}>{{ value }}</dd>`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	e := engine.New()
	got, err := e.Render(engine.Request{
		Type:  "h-card",
		Model: map[string]any{"given_name": "Grace"},
		Attributes: []spec.Attribute{{
			Property: "p-given-name",
			Template: template,
		}},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(got, "<dt>Given Name</dt>") {
		t.Errorf("label missing: %q", got)
	}
	if !strings.Contains(got, `<dd class="p-given-name">Grace</dd>`) {
		t.Errorf("value or attrs missing: %q", got)
	}
}

func TestNewAppliesEntryFormat(t *testing.T) {
	template := Must(`{{ value }}`)

	e := engine.New()
	got, err := e.Render(engine.Request{
		Type:  "h-card",
		Model: map[string]any{"name": "grace"},
		Attributes: []spec.Attribute{{
			Path:     "name",
			Format:   "upper",
			Template: template,
		}},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "GRACE" {
		t.Fatalf("Render = %q, want GRACE", got)
	}
}

func TestNewRejectsInvalidTemplate(t *testing.T) {
	if _, err := New(`{% if %}`); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMustPanicsOnInvalidTemplate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Must(`{% if %}`)
}
