package convert

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var frontmatterBlockRe = regexp.MustCompile(`\A---\n([\s\S]*?)\n---`)

// PostMeta holds the Jekyll front matter fields the site cares about
type PostMeta struct {
	Title      string     `yaml:"title"`
	Date       string     `yaml:"date"`
	Layout     string     `yaml:"layout"`
	Tags       StringList `yaml:"tags"`
	Categories StringList `yaml:"categories"`
	Published  *bool      `yaml:"published"`
}

// StringList accepts either a YAML sequence or a space separated string,
// both of which Jekyll allows for tags and categories
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = strings.Fields(node.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("expected string or list at line %d", node.Line)
	}
}

// IsPublished reports whether the post should be imported.
// Posts without a published field are treated as published.
func (m PostMeta) IsPublished() bool {
	return m.Published == nil || *m.Published
}

// frontmatterBlock returns the raw text between the leading --- delimiters
func frontmatterBlock(text string) (string, bool) {
	match := frontmatterBlockRe.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ExtractFrontmatter parses the leading front matter block into flat key/value pairs.
// Each line is split on its first colon and surrounding quotes are removed from values.
// Returns an empty map when there is no front matter.
func ExtractFrontmatter(text string) map[string]string {
	meta := make(map[string]string)

	block, ok := frontmatterBlock(text)
	if !ok {
		return meta
	}

	for _, line := range strings.Split(block, "\n") {
		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(line[idx+1:])
		meta[key] = unquote(val)
	}

	return meta
}

// unquote strips one matching pair of single or double quotes
func unquote(val string) string {
	if len(val) < 2 {
		return val
	}
	first, last := val[0], val[len(val)-1]
	if (first == '\'' || first == '"') && first == last {
		return val[1 : len(val)-1]
	}
	return val
}

// DecodeFrontmatter decodes the leading front matter block as YAML into v.
// The bool result is false when the document has no front matter.
func DecodeFrontmatter(text string, v any) (bool, error) {
	block, ok := frontmatterBlock(text)
	if !ok {
		return false, nil
	}

	if err := yaml.Unmarshal([]byte(block), v); err != nil {
		return true, fmt.Errorf("failed to parse front matter: %w", err)
	}

	return true, nil
}

// ParsePostMeta decodes front matter into PostMeta
func ParsePostMeta(text string) (PostMeta, error) {
	var meta PostMeta
	if _, err := DecodeFrontmatter(text, &meta); err != nil {
		return PostMeta{}, err
	}
	return meta, nil
}
