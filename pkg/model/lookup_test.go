package model

import "testing"

type contact struct {
	GivenName string `json:"given_name"`
	Phone     string
	Geo       geo `yaml:"geo"`
}

type geo struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

func TestLookupMaps(t *testing.T) {
	source := map[string]any{
		"given_name": "Grace",
		"geo": map[string]any{
			"latitude": 45.5,
		},
		"tags": map[string]string{"role": "engineer"},
	}

	cases := []struct {
		path string
		want any
		ok   bool
	}{
		{"given_name", "Grace", true},
		{"geo.latitude", 45.5, true},
		{"tags.role", "engineer", true},
		{"missing", nil, false},
		{"geo.missing", nil, false},
		{"given_name.nested", nil, false},
		{"", nil, false},
		{"geo.", nil, false},
	}

	for _, tc := range cases {
		got, ok := Lookup(source, tc.path)
		if ok != tc.ok {
			t.Errorf("Lookup(%q) ok = %v, want %v", tc.path, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("Lookup(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestLookupStructs(t *testing.T) {
	source := &contact{
		GivenName: "Grace",
		Phone:     "555-0100",
		Geo:       geo{Latitude: 45.5, Longitude: -73.9},
	}

	if got, ok := Lookup(source, "given_name"); !ok || got != "Grace" {
		t.Errorf("tag lookup = %v (ok=%v)", got, ok)
	}
	if got, ok := Lookup(source, "phone"); !ok || got != "555-0100" {
		t.Errorf("case-insensitive field lookup = %v (ok=%v)", got, ok)
	}
	if got, ok := Lookup(source, "geo.longitude"); !ok || got != -73.9 {
		t.Errorf("nested struct lookup = %v (ok=%v)", got, ok)
	}
	if _, ok := Lookup(source, "unexported"); ok {
		t.Error("missing field should not resolve")
	}
}

func TestLookupNilModel(t *testing.T) {
	if _, ok := Lookup(nil, "anything"); ok {
		t.Error("nil model should not resolve")
	}
}
