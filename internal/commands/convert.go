package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gerunddev/termfolio/internal/convert"
	"github.com/gerunddev/termfolio/internal/diff"
	"github.com/gerunddev/termfolio/internal/render"
	"github.com/gerunddev/termfolio/internal/styles"
)

// readPost returns the single positional file argument and its contents
func readPost(cmd string, args []string, valueFlags ...string) (string, string) {
	files := positional(args, valueFlags...)
	if len(files) != 1 {
		fail(fmt.Sprintf("Usage: termfolio %s <file>", cmd))
	}

	content, err := os.ReadFile(files[0])
	if err != nil {
		fail("Error reading post: " + err.Error())
	}
	return files[0], string(content)
}

// Convert converts a single Jekyll post and prints or writes the result
func Convert(args []string) {
	_, source := readPost("convert", args, "--out")

	cfg := mustLoadConfig()
	out := convert.NewJekyllConverter(cfg.AssetPrefix).Convert(source)

	data := []byte(out)
	if hasFlag(args, "--html") {
		html, err := render.HTML(out)
		if err != nil {
			fail("Error rendering HTML: " + err.Error())
		}
		data = html
	}

	dest, ok := flagValue(args, "--out")
	if !ok {
		fmt.Print(string(data))
		return
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fail("Error creating output directory: " + err.Error())
		}
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		fail("Error writing output: " + err.Error())
	}
	fmt.Println(styles.SuccessStyle.Render("✓ Wrote " + dest))
}

// Meta prints the frontmatter of a post, raw and decoded
func Meta(args []string) {
	path, source := readPost("meta", args)

	fmt.Println(styles.TitleStyle.Render(filepath.Base(path)))
	fmt.Println()

	fields := convert.ExtractFrontmatter(source)
	if len(fields) == 0 {
		fmt.Println(styles.DimStyle.Render("No frontmatter"))
		return
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s %s\n", styles.HeaderStyle.Render(k+":"), fields[k])
	}

	meta, err := convert.ParsePostMeta(source)
	if err != nil {
		fmt.Println()
		fmt.Println(styles.WarningStyle.Render("YAML decode failed: " + err.Error()))
		return
	}

	fmt.Println()
	fmt.Printf("%s %s\n", styles.HeaderStyle.Render("Tags:"), strings.Join(meta.Tags, ", "))
	fmt.Printf("%s %s\n", styles.HeaderStyle.Render("Categories:"), strings.Join(meta.Categories, ", "))
	fmt.Printf("%s %v\n", styles.HeaderStyle.Render("Published:"), meta.IsPublished())
}

// Preview renders a converted post to the terminal
func Preview(args []string) {
	_, source := readPost("preview", args)

	cfg := mustLoadConfig()
	out := convert.NewJekyllConverter(cfg.AssetPrefix).Convert(source)

	rendered, err := render.Terminal(out, cfg.Theme, render.DefaultWidth)
	if err != nil {
		fail("Error rendering preview: " + err.Error())
	}
	fmt.Print(rendered)
}

// Diff shows how a post changes when converted
func Diff(args []string) {
	files := positional(args)
	if len(files) != 1 {
		fail("Usage: termfolio diff <file> [--plain]")
	}

	cfg := mustLoadConfig()
	conv := convert.NewJekyllConverter(cfg.AssetPrefix)

	out, err := diff.Generate(files[0], conv, diff.Options{
		Plain: hasFlag(args, "--plain"),
		Theme: cfg.Theme,
		Width: render.DefaultWidth,
	})
	if err != nil {
		fail(err.Error())
	}

	if out == "" {
		fmt.Println(styles.DimStyle.Render("No changes: post is already plain markdown"))
		return
	}
	fmt.Print(out)
}
