package filter

import (
	"errors"
	"strings"
	"testing"

	"github.com/jfmyers9/rdio/pkg/rdio"
)

func testEntities() []rdio.Entity {
	return []rdio.Entity{
		&rdio.Album{Key: rdio.String("a1"), Name: rdio.String("Kid A"), Artist: rdio.String("Radiohead"), Length: rdio.Int(10), CanStream: rdio.Bool(true)},
		&rdio.Album{Key: rdio.String("a2"), Name: rdio.String("OK Computer"), Artist: rdio.String("Radiohead"), Length: rdio.Int(12), CanStream: rdio.Bool(false)},
		&rdio.Track{Key: rdio.String("t1"), Name: rdio.String("Windowlicker"), Artist: rdio.String("Aphex Twin")},
		&rdio.User{Key: rdio.String("s1"), Profile: rdio.Profile{FirstName: rdio.String("Ian"), LastName: rdio.String("Rogers")}},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `icontains(artist, "radio")`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `icontains(artist, "unclosed`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `shape == "Album" and length > 10 or hasPrefix(title, "win")`,
		},
		{
			name:       "operator form",
			expression: `artist contains "Radio" and not (title endsWith "x")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				var compErr *CompilationError
				if !errors.As(err, &compErr) {
					t.Errorf("expected CompilationError, got %T", err)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Expression() != strings.TrimSpace(tt.expression) {
				t.Errorf("expression = %q", f.Expression())
			}
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantKeys   []string
	}{
		{"by tag", `tag == "a"`, []string{"a1", "a2"}},
		{"by shape", `shape == "Track"`, []string{"t1"}},
		{"case-insensitive helper", `icontains(artist, "RADIO")`, []string{"a1", "a2"}},
		{"case-insensitive prefix", `hasPrefix(title, "ok ")`, []string{"a2"}},
		{"case-insensitive suffix", `hasSuffix(subtitle, "TWIN")`, []string{"t1"}},
		{"bare field nil on others", `canStream`, []string{"a1"}},
		{"numeric field", `has(length) and length > 10`, []string{"a2"}},
		{"summary title", `title == "Ian Rogers"`, []string{"s1"}},
		{"subtitle", `lower(subtitle) == "aphex twin"`, []string{"t1"}},
		{"missing field is nil", `!has(artist)`, []string{"s1"}},
		{"no match", `tag == "p"`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if err != nil {
				t.Fatalf("failed to compile: %v", err)
			}

			got, err := f.Apply(testEntities())
			if err != nil {
				t.Fatalf("failed to apply: %v", err)
			}

			keys := make([]string, 0, len(got))
			for _, e := range got {
				keys = append(keys, e.EntityKey())
			}
			if strings.Join(keys, ",") != strings.Join(tt.wantKeys, ",") {
				t.Errorf("matched %v, expected %v", keys, tt.wantKeys)
			}
		})
	}
}

func TestEvaluateMissingField(t *testing.T) {
	f, err := Compile(`canStream`)
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}

	ok, err := f.Evaluate(&rdio.Album{Key: rdio.String("a9")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("entity without the field matched")
	}
}

func TestEvaluateError(t *testing.T) {
	f, err := Compile(`name + 1 > 0`)
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}

	_, err = f.Evaluate(testEntities()[0])
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvaluationError, got %v", err)
	}
	if evalErr.Key != "a1" {
		t.Errorf("key = %q", evalErr.Key)
	}
}
