package placeholder

import (
	"reflect"
	"strings"
	"testing"
)

func TestEngine_ExtractKeys(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []string
	}{
		{
			name:     "empty input",
			template: "",
			want:     nil,
		},
		{
			name:     "plain string",
			template: "Conventional string",
			want:     nil,
		},
		{
			name:     "single placeholder",
			template: "Hello %(var1)",
			want:     []string{"var1"},
		},
		{
			name:     "multiple placeholders in template order",
			template: "Hello %(var1). Hallo %(var2).",
			want:     []string{"var1", "var2"},
		},
		{
			name:     "absent key omitted",
			template: "Hallo %(var1)%(vara)",
			want:     []string{"var1"},
		},
		{
			name:     "duplicates kept",
			template: "%(var1) and %(var1) again",
			want:     []string{"var1", "var1"},
		},
		{
			name:     "unterminated placeholder yields nothing",
			template: "Hallo %(var1",
			want:     nil,
		},
		{
			name:     "concrete motivating example",
			template: "Hello, %(name)! Today is %(day).",
			want:     []string{"name"},
		},
	}

	e := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ExtractKeys(tt.template, testValues())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeys(%q) = %v, want %v", tt.template, got, tt.want)
			}
		})
	}
}

func TestEngine_Keys(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []string
	}{
		{
			name:     "no placeholders",
			template: "plain",
			want:     nil,
		},
		{
			name:     "keys regardless of value map",
			template: "Hello, %(name)! Today is %(day).",
			want:     []string{"name", "day"},
		},
		{
			name:     "deduplicated in first-appearance order",
			template: "%(b)%(a)%(b)%(c)%(a)",
			want:     []string{"b", "a", "c"},
		},
		{
			name:     "formatting fields are not keys",
			template: "%(name:right:10:trunc)",
			want:     []string{"name"},
		},
	}

	e := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Keys(tt.template)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keys(%q) = %v, want %v", tt.template, got, tt.want)
			}
		})
	}
}

// Every key ExtractKeys returns was really substituted by Render.
func TestEngine_ExtractKeys_RoundTrip(t *testing.T) {
	template := "Hi %(name), %(ghost) and %(var1) and %(name) again."
	vals := testValues()

	e := NewEngine()
	rendered := e.Render(template, vals)
	for _, key := range e.ExtractKeys(template, vals) {
		value, ok := vals[key]
		if !ok {
			t.Fatalf("extracted key %q not in value map", key)
		}
		if value != "" && !strings.Contains(rendered, value) {
			t.Errorf("value %q for key %q missing from rendered output %q", value, key, rendered)
		}
	}
}
