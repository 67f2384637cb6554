package diff

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gerunddev/termfolio/internal/convert"
)

func TestUnified(t *testing.T) {
	source := "# Title\n{% highlight py %}\nprint(1)\n{% endhighlight %}\n"

	out := Unified("post.md", source, convert.NewJekyllConverter(""))

	for _, want := range []string{
		"--- post.md",
		"+++ post.md (converted)",
		"-{% highlight py %}",
		"+```python",
		" # Title",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("diff missing %q:\n%s", want, out)
		}
	}
}

func TestUnifiedNoChanges(t *testing.T) {
	if out := Unified("post.md", "# Plain\n", convert.NewJekyllConverter("")); out != "" {
		t.Errorf("expected empty diff for plain markdown, got:\n%s", out)
	}
}

func TestGeneratePlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2024-01-01-post.md")
	if err := os.WriteFile(path, []byte("![a]({{site.baseurl}}/a.png)\n"), 0644); err != nil {
		t.Fatalf("Failed to write post: %v", err)
	}

	out, err := Generate(path, convert.NewJekyllConverter("static/"), Options{Plain: true})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(out, "+![a](static/a.png)") {
		t.Errorf("expected converted line in diff:\n%s", out)
	}
	if strings.Contains(out, "```diff") {
		t.Error("plain diff should not be wrapped in a code fence")
	}
}

func TestGenerateMissingFile(t *testing.T) {
	if _, err := Generate(filepath.Join(t.TempDir(), "nope.md"), convert.NewJekyllConverter(""), Options{}); err == nil {
		t.Error("expected error for missing file")
	}
}
