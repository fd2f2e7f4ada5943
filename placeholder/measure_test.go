package placeholder

import (
	"reflect"
	"testing"
)

func TestEngine_Measure(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []int
	}{
		{
			name:     "empty input",
			template: "",
			want:     []int{0},
		},
		{
			name:     "plain string",
			template: "Conventional string",
			want:     []int{19},
		},
		{
			name:     "unicode counted in runes",
			template: "Smiley 😊 Smiley",
			want:     []int{15},
		},
		{
			name:     "single placeholder",
			template: "Hello %(var1)",
			want:     []int{11, 5},
		},
		{
			name:     "invalid token measured as literal",
			template: "Hallo %z",
			want:     []int{8},
		},
		{
			name:     "doubled escape measured once",
			template: "abcde %%",
			want:     []int{7},
		},
		{
			name:     "multiple placeholders",
			template: "Hello %(var1). Hallo %(var2).",
			want:     []int{24, 5, 4},
		},
		{
			name:     "unknown key contributes a zero entry",
			template: "Hallo %(var1)%(vara)",
			want:     []int{11, 5, 0},
		},
		{
			name:     "padding counts toward the total only",
			template: "Hallo %(str4:10)xx",
			want:     []int{18, 4},
		},
		{
			name:     "right alignment measures the same",
			template: "Hallo %(str4:right:10)xx",
			want:     []int{18, 4},
		},
		{
			name:     "longer value overflows its width",
			template: "Hallo %(str14:10)xx",
			want:     []int{22, 14},
		},
		{
			name:     "truncated value measures its cut length",
			template: "Hallo %(str14:10:trunc)xx",
			want:     []int{18, 10},
		},
		{
			name:     "exact width value",
			template: "Hallo %(str10:10:trunc)xx",
			want:     []int{18, 10},
		},
		{
			name:     "unicode value measured in runes",
			template: "Hallo %(umlaute:10:trunc)xx",
			want:     []int{18, 3},
		},
		{
			name:     "unknown key still padded to width",
			template: "[%(ghost:5)]",
			want:     []int{7, 0},
		},
		{
			name:     "concrete motivating example",
			template: "Hello, %(name)!",
			want:     []int{13, 5},
		},
	}

	e := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Measure(tt.template, testValues())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Measure(%q) = %v, want %v", tt.template, got, tt.want)
			}
		})
	}
}

// The total at index 0 always matches what Render actually produces.
func TestEngine_Measure_MatchesRender(t *testing.T) {
	templates := []string{
		"",
		"plain",
		"Hello, %(name)!",
		"Hallo %(str4:10)xx",
		"Hallo %(str14:10:trunc)xx",
		"%(ghost:5)|%(umlaute:center:8)",
		"50%( and %%",
	}

	e := NewEngine()
	for _, template := range templates {
		lengths := e.Measure(template, testValues())
		rendered := []rune(e.Render(template, testValues()))
		if lengths[0] != len(rendered) {
			t.Errorf("Measure(%q)[0] = %d, rendered length is %d", template, lengths[0], len(rendered))
		}
	}
}
