package ecfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"myapp", "myapp"},
		{"MyApp", "myapp"},
		{"  MyApp ", "myapp"},
		{"\tMYAPP\n", "myapp"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolvePathExplicit(t *testing.T) {
	got, err := ResolvePath("myapp", filepath.Join("some", "dir"))
	if err != nil {
		t.Fatalf("ResolvePath() error = %v", err)
	}
	want := filepath.Join("some", "dir", "myapp.ecfg")
	if got != want {
		t.Errorf("ResolvePath() = %q, want %q", got, want)
	}
}

func TestResolvePathDefault(t *testing.T) {
	got, err := ResolvePath("myapp", "")
	if err != nil {
		t.Fatalf("ResolvePath() error = %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	want := filepath.Join(home, ".empire", "myapp.ecfg")
	if got != want {
		t.Errorf("ResolvePath() = %q, want %q", got, want)
	}
	if !strings.HasSuffix(got, ".ecfg") {
		t.Errorf("resolved path %q should end with .ecfg", got)
	}
}
