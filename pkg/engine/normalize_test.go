package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-microformat/pkg/spec"
)

func contactModel() map[string]any {
	return map[string]any{
		"given_name":  "Grace",
		"family_name": "Hopper",
		"phone":       "555-0100",
		"note":        "",
		"geo": map[string]any{
			"latitude":  45.5,
			"longitude": -73.935242,
		},
	}
}

func normalizeOne(t *testing.T, e *Engine, source any, attr spec.Attribute) spec.Attribute {
	t.Helper()
	normalized, err := e.Normalize(Request{
		Type:       "h-card",
		Model:      source,
		Attributes: []spec.Attribute{attr},
	})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if len(normalized) != 1 {
		t.Fatalf("expected 1 normalized entry, got %d", len(normalized))
	}
	return normalized[0]
}

func TestNormalizePlainDefaults(t *testing.T) {
	e := New()
	got := normalizeOne(t, e, contactModel(), spec.Attribute{Property: "p-given-name"})

	want := spec.Attribute{
		Property: "p-given-name",
		Path:     "given_name",
		Label:    "Given Name",
		Value:    "Grace",
		Format:   "text",
		Options:  map[string]string{"class": "p-given-name"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(spec.Template{})); diff != "" {
		t.Fatalf("normalized entry mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeExplicitValueWins(t *testing.T) {
	e := New()

	got := normalizeOne(t, e, contactModel(), spec.Attribute{
		Property: "p-given-name",
		Value:    "Override",
	})
	if got.Value != "Override" {
		t.Errorf("explicit value overwritten: %v", got.Value)
	}

	got = normalizeOne(t, e, contactModel(), spec.Attribute{
		Property: "p-given-name",
		Value:    "",
	})
	if got.Value != "" {
		t.Errorf("explicit empty value overwritten: %v", got.Value)
	}
}

// labeledContact is a model carrying its own label metadata.
type labeledContact map[string]any

func (labeledContact) Label(attribute string) (string, bool) {
	if attribute == "given_name" {
		return "First name", true
	}
	return "", false
}

func TestNormalizeModelLabelWins(t *testing.T) {
	e := New()

	got := normalizeOne(t, e, labeledContact(contactModel()), spec.Attribute{Property: "p-given-name"})
	if got.Label != "First name" {
		t.Errorf("label = %q, want model metadata label", got.Label)
	}

	got = normalizeOne(t, e, labeledContact(contactModel()), spec.Attribute{Property: "p-family-name"})
	if got.Label != "Family Name" {
		t.Errorf("label = %q, want humanized fallback", got.Label)
	}
}

func TestNormalizeHiddenEntriesAreNeverEvaluated(t *testing.T) {
	e := New()
	hidden := false

	// This entry would fail with "cannot determine value" and an invalid
	// property if it were evaluated.
	normalized, err := e.Normalize(Request{
		Type:  "h-card",
		Model: contactModel(),
		Attributes: []spec.Attribute{
			{Property: "Broken", Visible: &hidden},
			{Property: "p-given-name"},
		},
	})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if len(normalized) != 1 {
		t.Fatalf("hidden entry not dropped, got %d entries", len(normalized))
	}
	if normalized[0].Property != "p-given-name" {
		t.Fatalf("wrong surviving entry: %+v", normalized[0])
	}
}

func TestNormalizeErrors(t *testing.T) {
	e := New()

	cases := []struct {
		name string
		attr spec.Attribute
	}{
		{"class on plain entry", spec.Attribute{Property: "p-given-name", Class: "custom"}},
		{"malformed property", spec.Attribute{Property: "GivenName", Value: "x"}},
		{"no attribute and no value", spec.Attribute{Options: map[string]string{"id": "x"}}},
		{"unresolvable attribute", spec.Attribute{Path: "does.not.exist"}},
		{"attribute on embedded entry", spec.Attribute{Microformat: "h-adr", Path: "geo"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Normalize(Request{
				Type:       "h-card",
				Model:      contactModel(),
				Attributes: []spec.Attribute{tc.attr},
			})
			if !errors.Is(err, spec.ErrConfig) {
				t.Fatalf("Normalize = %v, want ErrConfig", err)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	e := New()
	input := []spec.Attribute{
		{Property: "p-given-name", Options: map[string]string{"id": "given"}},
	}

	if _, err := e.Normalize(Request{Type: "h-card", Model: contactModel(), Attributes: input}); err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	if input[0].Path != "" || input[0].Label != "" || input[0].Value != nil {
		t.Errorf("input entry mutated: %+v", input[0])
	}
	if _, ok := input[0].Options["class"]; ok {
		t.Errorf("input options mutated: %v", input[0].Options)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	e := New()
	source := contactModel()

	first, err := e.Normalize(Request{
		Type:  "h-card",
		Model: source,
		Attributes: []spec.Attribute{
			{Property: "p-given-name"},
			{Microformat: "h-geo", Property: "p-geo", Attributes: []spec.Attribute{
				{Property: "p-latitude", Path: "geo.latitude", Format: "latitude"},
			}},
		},
	})
	if err != nil {
		t.Fatalf("first Normalize: %v", err)
	}

	second, err := e.Normalize(Request{Type: "h-card", Model: source, Attributes: first})
	if err != nil {
		t.Fatalf("second Normalize: %v", err)
	}
	if diff := cmp.Diff(first, second, cmp.AllowUnexported(spec.Template{})); diff != "" {
		t.Fatalf("re-normalization is not a no-op (-first +second):\n%s", diff)
	}
}

func TestAppendClassSkipsDuplicates(t *testing.T) {
	options := appendClass(map[string]string{"class": "fn p-name"}, "p-name")
	if options["class"] != "fn p-name" {
		t.Fatalf("duplicate class appended: %q", options["class"])
	}
	options = appendClass(options, "extra")
	if options["class"] != "fn p-name extra" {
		t.Fatalf("class not appended: %q", options["class"])
	}
	options = appendClass(nil, "alone")
	if options["class"] != "alone" {
		t.Fatalf("nil options not initialised: %q", options["class"])
	}
}
