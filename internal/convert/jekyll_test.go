package convert

import (
	"strings"
	"testing"
)

func TestStripFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "leading block",
			input:    "---\na: 1\n---\nBody",
			expected: "Body",
		},
		{
			name:     "multi-line block",
			input:    "---\nlayout: post\ntitle: Hello\n---\n# Heading\n",
			expected: "# Heading\n",
		},
		{
			name:     "delimiter later in body",
			input:    "Intro\n---\na: 1\n---\nBody",
			expected: "Intro\n---\na: 1\n---\nBody",
		},
		{
			name:     "only first block removed",
			input:    "---\na: 1\n---\nBody\n---\nb: 2\n---\n",
			expected: "Body\n---\nb: 2\n---\n",
		},
		{
			name:     "unterminated block",
			input:    "---\na: 1\nBody",
			expected: "---\na: 1\nBody",
		},
		{
			name:     "closing delimiter without newline",
			input:    "---\na: 1\n---",
			expected: "---\na: 1\n---",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := StripFrontmatter(tt.input)
			if actual != tt.expected {
				t.Errorf("StripFrontmatter(%q) = %q, want %q", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestConvertHighlightBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "python alias",
			input:    "{% highlight py %}\nprint(1)\n{% endhighlight %}",
			expected: "```python\nprint(1)\n```",
		},
		{
			name:     "shell alias",
			input:    "{% highlight sh %}\nls -la\n{% endhighlight %}",
			expected: "```bash\nls -la\n```",
		},
		{
			name:     "javascript alias",
			input:    "{% highlight js %}\nconsole.log(1)\n{% endhighlight %}",
			expected: "```javascript\nconsole.log(1)\n```",
		},
		{
			name:     "unknown language kept",
			input:    "{% highlight rust %}\nfn main() {}\n{% endhighlight %}",
			expected: "```rust\nfn main() {}\n```",
		},
		{
			name:     "tolerates whitespace in tags",
			input:    "{%highlight   go%}\npackage main\n{%   endhighlight%}",
			expected: "```go\npackage main\n```",
		},
		{
			name:     "no newline after opening tag",
			input:    "{% highlight go %}x := 1\n{% endhighlight %}",
			expected: "```go\nx := 1\n```",
		},
		{
			name:     "only one trailing newline dropped",
			input:    "{% highlight go %}\nx := 1\n\n{% endhighlight %}",
			expected: "```go\nx := 1\n\n```",
		},
		{
			name: "multiple blocks stay separate",
			input: "{% highlight py %}\na = 1\n{% endhighlight %}\ntext\n" +
				"{% highlight sh %}\necho hi\n{% endhighlight %}",
			expected: "```python\na = 1\n```\ntext\n```bash\necho hi\n```",
		},
		{
			name:     "unterminated block untouched",
			input:    "{% highlight py %}\nprint(1)\n",
			expected: "{% highlight py %}\nprint(1)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := ConvertHighlightBlocks(tt.input)
			if actual != tt.expected {
				t.Errorf("ConvertHighlightBlocks(%q) = %q, want %q", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestHighlightBlockHasNoBlankLineBeforeFence(t *testing.T) {
	out := ConvertHighlightBlocks("{% highlight py %}\nprint(1)\n{% endhighlight %}")

	lines := strings.Split(out, "\n")
	if lines[0] != "```python" {
		t.Errorf("first line = %q, want opening fence tagged python", lines[0])
	}
	if lines[len(lines)-1] != "```" {
		t.Errorf("last line = %q, want closing fence", lines[len(lines)-1])
	}
	if lines[len(lines)-2] != "print(1)" {
		t.Errorf("line before closing fence = %q, want print(1)", lines[len(lines)-2])
	}
	if strings.Count(out, "```") != 2 {
		t.Errorf("expected exactly two fences, got %q", out)
	}
}

func TestConvertRawBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tags removed, content kept",
			input:    "{% raw %}\n{{ x }}\n{% endraw %}",
			expected: "{{ x }}\n",
		},
		{
			name:     "inline raw",
			input:    "use {% raw %}{{ page.title }}{% endraw %} here",
			expected: "use {{ page.title }} here",
		},
		{
			name:     "whitespace tolerant",
			input:    "{%raw%}\n{% if %}\n{%  endraw  %}\nafter",
			expected: "{% if %}\nafter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := ConvertRawBlocks(tt.input)
			if actual != tt.expected {
				t.Errorf("ConvertRawBlocks(%q) = %q, want %q", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestRewriteBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		prefix   string
		expected string
	}{
		{
			name:     "image path",
			input:    "{{site.baseurl}}/images/a.png",
			prefix:   DefaultAssetPrefix,
			expected: "_backup/images/a.png",
		},
		{
			name:     "inside markdown image",
			input:    "![alt]({{site.baseurl}}/images/a.png) and ![b]({{site.baseurl}}/b.jpg)",
			prefix:   DefaultAssetPrefix,
			expected: "![alt](_backup/images/a.png) and ![b](_backup/b.jpg)",
		},
		{
			name:     "custom prefix is literal",
			input:    "{{site.baseurl}}/a.png",
			prefix:   "assets/$1/",
			expected: "assets/$1/a.png",
		},
		{
			name:     "placeholder without separator untouched",
			input:    "{{site.baseurl}}",
			prefix:   DefaultAssetPrefix,
			expected: "{{site.baseurl}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := RewriteBaseURL(tt.input, tt.prefix)
			if actual != tt.expected {
				t.Errorf("RewriteBaseURL(%q) = %q, want %q", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestStripTargetBlank(t *testing.T) {
	input := `[x](y){:target="_blank"}`
	if got := StripTargetBlank(input); got != "[x](y)" {
		t.Errorf("StripTargetBlank(%q) = %q, want %q", input, got, "[x](y)")
	}

	input = `[a](b){:target="_blank"} and [c](d){:target="_blank"}`
	if got := StripTargetBlank(input); got != "[a](b) and [c](d)" {
		t.Errorf("StripTargetBlank(%q) = %q", input, got)
	}
}

func TestConvertCallouts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tip",
			input:    "{: .tip }\nDo this.",
			expected: "> 💡 **Tip:** Do this.",
		},
		{
			name:     "note",
			input:    "{: .note }\nRemember.",
			expected: "> 📝 **Note:** Remember.",
		},
		{
			name:     "warning without spaces",
			input:    "{:.warning}\nCareful.",
			expected: "> ⚠️ **Warning:** Careful.",
		},
		{
			name:     "important",
			input:    "{: .important }\nRead me.",
			expected: "> ❗ **Important:** Read me.",
		},
		{
			name:     "unknown class drops annotation",
			input:    "{: .foo }\nPlain line.",
			expected: "Plain line.",
		},
		{
			name:     "only the first line is captured",
			input:    "{: .tip }\nFirst.\nSecond.",
			expected: "> 💡 **Tip:** First.\nSecond.",
		},
		{
			name:     "annotation without content line",
			input:    "{: .tip }\n",
			expected: "{: .tip }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := ConvertCallouts(tt.input)
			if actual != tt.expected {
				t.Errorf("ConvertCallouts(%q) = %q, want %q", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestConvertFullDocument(t *testing.T) {
	input := `---
layout: post
title: "Shipping a CLI"
---
# Shipping a CLI

![cover]({{site.baseurl}}/images/cover.png)

Read the [docs](https://example.com){:target="_blank"}.

{% highlight py %}
def main():
    print("hi")
{% endhighlight %}

{% raw %}
{{ not_a_variable }}
{% endraw %}
{: .warning }
Do not run this in production.
`

	expected := "# Shipping a CLI\n\n" +
		"![cover](_backup/images/cover.png)\n\n" +
		"Read the [docs](https://example.com).\n\n" +
		"```python\ndef main():\n    print(\"hi\")\n```\n\n" +
		"{{ not_a_variable }}\n" +
		"> ⚠️ **Warning:** Do not run this in production.\n"

	actual := Convert(input)
	if actual != expected {
		t.Errorf("Conversion mismatch.\n\nExpected:\n%s\n\nGot:\n%s", expected, actual)
	}
}

func TestConvertPlainMarkdownUnchanged(t *testing.T) {
	inputs := []string{
		"",
		"# Title\n\nSome *plain* markdown.\n",
		"```go\nfmt.Println(1)\n```\n",
		"> quoted\n\n- a\n- b\n",
		"A line with --- in it\n",
	}

	for _, input := range inputs {
		if got := Convert(input); got != input {
			t.Errorf("Convert(%q) = %q, want input unchanged", input, got)
		}
	}
}

func TestConvertIdempotent(t *testing.T) {
	input := "---\ntitle: x\n---\n{% highlight sh %}\nls\n{% endhighlight %}\n" +
		"{: .tip }\nUse it.\n![a]({{site.baseurl}}/a.png)\n"

	once := Convert(input)
	twice := Convert(once)
	if once != twice {
		t.Errorf("conversion not idempotent.\n\nOnce:\n%s\n\nTwice:\n%s", once, twice)
	}
}

func TestJekyllConverterCustomPrefix(t *testing.T) {
	c := NewJekyllConverter("static/")

	got := c.Convert("![a]({{site.baseurl}}/a.png)")
	if got != "![a](static/a.png)" {
		t.Errorf("Convert() = %q, want static prefix", got)
	}
	if c.AssetPrefix() != "static/" {
		t.Errorf("AssetPrefix() = %q, want static/", c.AssetPrefix())
	}

	if NewJekyllConverter("").AssetPrefix() != DefaultAssetPrefix {
		t.Error("empty prefix should fall back to DefaultAssetPrefix")
	}
}

func TestJekyllConverterStageOrder(t *testing.T) {
	expected := []string{"frontmatter", "highlight", "raw", "baseurl", "target-blank", "callouts"}

	stages := NewJekyllConverter("").Stages()
	if len(stages) != len(expected) {
		t.Fatalf("Stages() = %v, want %v", stages, expected)
	}
	for i := range expected {
		if stages[i] != expected[i] {
			t.Errorf("stage %d = %q, want %q", i, stages[i], expected[i])
		}
	}
}
