package ecfg

import (
	"reflect"
	"testing"
)

type serverSettings struct {
	Host    string   `json:"host"`
	Port    int      `json:"port"`
	Debug   bool     `json:"debug"`
	Origins []string `json:"origins,omitempty"`
}

func TestMapConfigRoundTrip(t *testing.T) {
	in := map[string]any{
		"name":   "myapp",
		"count":  float64(3),
		"active": true,
		"nested": map[string]any{"a": "b"},
	}

	cfg, err := MapConfig{}.FromMap(in)
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	out, err := cfg.ToMap()
	if err != nil {
		t.Fatalf("ToMap() error = %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestMapConfigFromNil(t *testing.T) {
	cfg, err := MapConfig{}.FromMap(nil)
	if err != nil {
		t.Fatalf("FromMap(nil) error = %v", err)
	}
	m := cfg.(MapConfig)
	if m == nil {
		t.Fatal("FromMap(nil) should return a non-nil map")
	}
	// Must be writable
	m["k"] = "v"
	if len(m) != 1 {
		t.Errorf("len = %d, want 1", len(m))
	}
}

func TestRecordRoundTrip(t *testing.T) {
	r := NewRecord(serverSettings{
		Host:    "example.com",
		Port:    8080,
		Debug:   true,
		Origins: []string{"a", "b"},
	})

	m, err := r.ToMap()
	if err != nil {
		t.Fatalf("ToMap() error = %v", err)
	}
	back, err := (&Record[serverSettings]{}).FromMap(m)
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	got := back.(*Record[serverSettings])
	if !reflect.DeepEqual(got.Value, r.Value) {
		t.Errorf("round trip = %+v, want %+v", got.Value, r.Value)
	}
}

func TestRecordMissingKeysAreZeroValues(t *testing.T) {
	cfg, err := (&Record[serverSettings]{}).FromMap(map[string]any{"host": "example.com"})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	got := cfg.(*Record[serverSettings])
	if got.Value.Host != "example.com" {
		t.Errorf("Host = %q, want %q", got.Value.Host, "example.com")
	}
	if got.Value.Port != 0 || got.Value.Debug {
		t.Errorf("absent fields should be zero values, got %+v", got.Value)
	}
}

func TestRecordExtraKeyFails(t *testing.T) {
	_, err := (&Record[serverSettings]{}).FromMap(map[string]any{
		"host":    "example.com",
		"unknown": 1,
	})
	if !IsSchemaMismatch(err) {
		t.Fatalf("FromMap() error = %v, want SchemaError", err)
	}
}

func TestRecordTypeMismatchFails(t *testing.T) {
	_, err := (&Record[serverSettings]{}).FromMap(map[string]any{"port": "eighty"})
	if !IsSchemaMismatch(err) {
		t.Fatalf("FromMap() error = %v, want SchemaError", err)
	}
}

func TestRecordNestedStructRejected(t *testing.T) {
	type inner struct {
		A string `json:"a"`
	}
	type outer struct {
		Name  string `json:"name"`
		Inner inner  `json:"inner"`
	}

	if _, err := NewRecord(outer{}).ToMap(); !IsSchemaMismatch(err) {
		t.Errorf("ToMap() error = %v, want SchemaError", err)
	}
	if _, err := (&Record[outer]{}).FromMap(map[string]any{}); !IsSchemaMismatch(err) {
		t.Errorf("FromMap() error = %v, want SchemaError", err)
	}
}

func TestRecordIgnoredNestedFieldAllowed(t *testing.T) {
	type inner struct{ A string }
	type outer struct {
		Name  string `json:"name"`
		Inner inner  `json:"-"`
	}

	m, err := NewRecord(outer{Name: "x"}).ToMap()
	if err != nil {
		t.Fatalf("ToMap() error = %v", err)
	}
	if _, ok := m["Inner"]; ok {
		t.Error("ignored field should not be serialized")
	}
}

func TestRecordNonStructRejected(t *testing.T) {
	if _, err := (&Record[int]{}).FromMap(map[string]any{}); !IsSchemaMismatch(err) {
		t.Errorf("FromMap() error = %v, want SchemaError", err)
	}
}
