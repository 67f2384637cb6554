package render

import (
	"strings"
	"testing"

	"github.com/gerunddev/termfolio/internal/convert"
)

func TestHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "fenced code keeps language",
			input:    convert.Convert("{% highlight py %}\nprint(1)\n{% endhighlight %}"),
			contains: []string{`<pre><code class="language-python">print(1)`},
		},
		{
			name:     "callout becomes blockquote",
			input:    convert.Convert("{: .tip }\nDo this."),
			contains: []string{"<blockquote>", "<strong>Tip:</strong> Do this."},
		},
		{
			name:     "raw html passes through",
			input:    `<i class="fab fa-github"></i> GitHub`,
			contains: []string{`<i class="fab fa-github"></i>`},
		},
		{
			name:     "heading ids",
			input:    "# About me",
			contains: []string{`<h1 id="about-me">About me</h1>`},
		},
		{
			name:     "tables from gfm",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |\n",
			contains: []string{"<table>", "<td>1</td>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := HTML(tt.input)
			if err != nil {
				t.Fatalf("HTML failed: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(string(out), want) {
					t.Errorf("HTML output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestGlamourStyle(t *testing.T) {
	if got := GlamourStyle("tokyo"); got != "tokyo-night" {
		t.Errorf("GlamourStyle(tokyo) = %q, want tokyo-night", got)
	}
	if got := GlamourStyle("unknown"); got != "dark" {
		t.Errorf("GlamourStyle(unknown) = %q, want dark", got)
	}
}

func TestTerminal(t *testing.T) {
	for _, theme := range []string{"tokyo", "gruvbox"} {
		out, err := Terminal("# Hello\n\nSome text.\n", theme, 0)
		if err != nil {
			t.Fatalf("Terminal(%s) failed: %v", theme, err)
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("Terminal(%s) returned empty output", theme)
		}
	}
}
