package convert

import (
	"regexp"
	"strings"
)

// DefaultAssetPrefix is where {{site.baseurl}}/ references are pointed after conversion
const DefaultAssetPrefix = "_backup/"

// LanguageAliases maps short highlight tokens to the names the renderer knows
var LanguageAliases = map[string]string{
	"py": "python",
	"sh": "bash",
	"js": "javascript",
}

// CalloutPrefixes maps a block attribute class to its blockquote prefix
var CalloutPrefixes = map[string]string{
	"tip":       "💡 **Tip:**",
	"note":      "📝 **Note:**",
	"warning":   "⚠️ **Warning:**",
	"important": "❗ **Important:**",
}

var (
	frontmatterRe = regexp.MustCompile(`\A---\n[\s\S]*?\n---\n`)
	highlightRe   = regexp.MustCompile(`\{%\s*highlight\s+(\w+)\s*%\}\n?([\s\S]*?)\{%\s*endhighlight\s*%\}`)
	rawOpenRe     = regexp.MustCompile(`\{%\s*raw\s*%\}\n?`)
	rawCloseRe    = regexp.MustCompile(`\{%\s*endraw\s*%\}\n?`)
	baseURLRe     = regexp.MustCompile(`\{\{site\.baseurl\}\}/`)
	calloutRe     = regexp.MustCompile(`\{:\s*\.(\w+)\s*\}\n(.+)`)
)

const targetBlank = `{:target="_blank"}`

// Stage is a single named rewrite in the conversion pipeline
type Stage struct {
	Name  string
	Apply func(string) string
}

// JekyllConverter turns Jekyll/Liquid flavoured markdown into plain markdown.
// It holds no mutable state, so one instance can be shared across goroutines.
type JekyllConverter struct {
	assetPrefix string
	stages      []Stage
}

// NewJekyllConverter creates a converter that rewrites site.baseurl paths to assetPrefix.
// An empty prefix falls back to DefaultAssetPrefix.
func NewJekyllConverter(assetPrefix string) *JekyllConverter {
	if assetPrefix == "" {
		assetPrefix = DefaultAssetPrefix
	}

	c := &JekyllConverter{assetPrefix: assetPrefix}

	// Order matters: frontmatter must go before anything else can touch the leading ---
	c.stages = []Stage{
		{Name: "frontmatter", Apply: StripFrontmatter},
		{Name: "highlight", Apply: ConvertHighlightBlocks},
		{Name: "raw", Apply: ConvertRawBlocks},
		{Name: "baseurl", Apply: func(text string) string {
			return RewriteBaseURL(text, c.assetPrefix)
		}},
		{Name: "target-blank", Apply: StripTargetBlank},
		{Name: "callouts", Apply: ConvertCallouts},
	}

	return c
}

// AssetPrefix returns the local path prefix used for site.baseurl references
func (c *JekyllConverter) AssetPrefix() string {
	return c.assetPrefix
}

// Stages returns the pipeline stage names in execution order
func (c *JekyllConverter) Stages() []string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name
	}
	return names
}

// Convert runs every stage over text in order
func (c *JekyllConverter) Convert(text string) string {
	result := text
	for _, s := range c.stages {
		result = s.Apply(result)
	}
	return result
}

var defaultConverter = NewJekyllConverter(DefaultAssetPrefix)

// Convert converts Jekyll markdown using the default asset prefix
func Convert(text string) string {
	return defaultConverter.Convert(text)
}

// StripFrontmatter removes a leading --- delimited block.
// Only a block at the very start of the document is removed.
func StripFrontmatter(text string) string {
	return frontmatterRe.ReplaceAllLiteralString(text, "")
}

// ConvertHighlightBlocks converts {% highlight lang %} ... {% endhighlight %} to fenced code blocks
func ConvertHighlightBlocks(text string) string {
	return replaceAllSubmatchFunc(highlightRe, text, func(groups []string) string {
		lang := groups[1]
		if alias, ok := LanguageAliases[lang]; ok {
			lang = alias
		}
		code := strings.TrimSuffix(groups[2], "\n")
		return "```" + lang + "\n" + code + "\n```"
	})
}

// ConvertRawBlocks strips {% raw %} and {% endraw %} tags, keeping their content
func ConvertRawBlocks(text string) string {
	text = rawOpenRe.ReplaceAllLiteralString(text, "")
	return rawCloseRe.ReplaceAllLiteralString(text, "")
}

// RewriteBaseURL replaces {{site.baseurl}}/ with prefix
func RewriteBaseURL(text, prefix string) string {
	return baseURLRe.ReplaceAllLiteralString(text, prefix)
}

// StripTargetBlank removes {:target="_blank"} link attributes.
// External links are opened in a new tab by the site itself.
func StripTargetBlank(text string) string {
	return strings.ReplaceAll(text, targetBlank, "")
}

// ConvertCallouts converts a {: .class } attribute and the single line after it
// into a prefixed blockquote. Unknown classes keep only the content line.
func ConvertCallouts(text string) string {
	return replaceAllSubmatchFunc(calloutRe, text, func(groups []string) string {
		prefix, ok := CalloutPrefixes[groups[1]]
		if !ok {
			return groups[2]
		}
		return "> " + prefix + " " + groups[2]
	})
}

// replaceAllSubmatchFunc is ReplaceAllStringFunc with access to capture groups
func replaceAllSubmatchFunc(re *regexp.Regexp, text string, repl func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, m := range matches {
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = text[m[2*i]:m[2*i+1]]
			}
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(repl(groups))
		last = m[1]
	}
	b.WriteString(text[last:])

	return b.String()
}
