package generator

import (
	"errors"
	"reflect"
	"testing"
)

const sampleJSON = `{"youtube":{"title":"Hello there","tags":["a","b"]},"socials":{"x":{"main":"hi"}}}`

func TestExtract_FencedMatchesUnwrapped(t *testing.T) {
	plain, err := Extract(sampleJSON)
	if err != nil {
		t.Fatalf("unwrapped: %v", err)
	}

	fenced, err := Extract("Here you go:\n```json\n" + sampleJSON + "\n```\nEnjoy!")
	if err != nil {
		t.Fatalf("fenced: %v", err)
	}

	if !reflect.DeepEqual(plain, fenced) {
		t.Errorf("fenced = %v, unwrapped = %v", fenced, plain)
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantKey string // a top-level key expected in the result
		wantErr bool
	}{
		{"bare object", `{"a":1}`, "a", false},
		{"prose around object", "Sure! {\"a\": {\"b\": 2}} Hope this helps.", "a", false},
		{"uppercase fence label", "```JSON\n{\"a\":1}\n```", "a", false},
		{"trailing comma in object", `{"a":1,}`, "a", false},
		{"trailing comma in array", `{"a":[1,2,],"b":{"c":3,},}`, "b", false},
		{"fence with trailing comma", "```json\n{\"a\":[\"x\",],}\n```", "a", false},
		{"fence broken but braces fine", "```json\n{\"a\":\n```\n{\"b\":1}", "b", false},
		{"missing quotes", `{a: 1}`, "", true},
		{"truncated", `{"a": [1, 2`, "", true},
		{"no json", "I cannot help with that.", "", true},
		{"array is not an object", `[1, 2, 3]`, "", true},
		{"empty", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := Extract(tt.raw)
			if tt.wantErr {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("expected ParseError, got %v (%v)", err, obj)
				}
				if perr.Raw != tt.raw {
					t.Errorf("raw = %q, want %q", perr.Raw, tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := obj[tt.wantKey]; !ok {
				t.Errorf("result %v missing key %q", obj, tt.wantKey)
			}
		})
	}
}

func TestParseError_Preview(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}
	err := &ParseError{Raw: string(long)}
	if len(err.Error()) > 300 {
		t.Errorf("error message too long: %d", len(err.Error()))
	}
	if len(err.Raw) != 1000 {
		t.Error("raw text must be kept whole")
	}
}
