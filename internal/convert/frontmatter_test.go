package convert

import (
	"testing"
)

func TestExtractFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:  "quoted and bare values",
			input: "---\ntitle: 'Hello'\ndate: 2024-01-01\n---\n",
			expected: map[string]string{
				"title": "Hello",
				"date":  "2024-01-01",
			},
		},
		{
			name:  "double quotes and inner colon",
			input: "---\ntitle: \"Go: a tour\"\nurl: https://example.com\n---\nBody",
			expected: map[string]string{
				"title": "Go: a tour",
				"url":   "https://example.com",
			},
		},
		{
			name:  "mismatched quotes kept",
			input: "---\ntitle: 'Hello\"\n---\n",
			expected: map[string]string{
				"title": "'Hello\"",
			},
		},
		{
			name:  "lines without colon ignored",
			input: "---\njust text\n:leading colon\nkey:   spaced   \n---\n",
			expected: map[string]string{
				"key": "spaced",
			},
		},
		{
			name:  "single quote character not stripped",
			input: "---\nmark: '\n---\n",
			expected: map[string]string{
				"mark": "'",
			},
		},
		{
			name:     "no front matter",
			input:    "# Title\n\ntitle: nope\n",
			expected: map[string]string{},
		},
		{
			name:     "front matter not at start",
			input:    "\n---\ntitle: x\n---\n",
			expected: map[string]string{},
		},
		{
			name:     "empty input",
			input:    "",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := ExtractFrontmatter(tt.input)
			if actual == nil {
				t.Fatal("ExtractFrontmatter returned nil map")
			}
			if len(actual) != len(tt.expected) {
				t.Fatalf("ExtractFrontmatter(%q) = %v, want %v", tt.input, actual, tt.expected)
			}
			for k, v := range tt.expected {
				if actual[k] != v {
					t.Errorf("key %q = %q, want %q", k, actual[k], v)
				}
			}
		})
	}
}

func TestExtractFrontmatterDoesNotModifyConversion(t *testing.T) {
	input := "---\ntitle: 'Hello'\n---\nBody"

	_ = ExtractFrontmatter(input)
	if got := Convert(input); got != "Body" {
		t.Errorf("Convert() = %q, want Body", got)
	}
}

func TestParsePostMeta(t *testing.T) {
	input := `---
layout: post
title: "Building a terminal portfolio"
date: 2023-05-14 10:00:00 +0200
tags: [go, cli]
categories: dev notes
---
Body
`

	meta, err := ParsePostMeta(input)
	if err != nil {
		t.Fatalf("ParsePostMeta failed: %v", err)
	}

	if meta.Title != "Building a terminal portfolio" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Layout != "post" {
		t.Errorf("Layout = %q, want post", meta.Layout)
	}
	if meta.Date != "2023-05-14 10:00:00 +0200" {
		t.Errorf("Date = %q", meta.Date)
	}
	if len(meta.Tags) != 2 || meta.Tags[0] != "go" || meta.Tags[1] != "cli" {
		t.Errorf("Tags = %v, want [go cli]", meta.Tags)
	}
	if len(meta.Categories) != 2 || meta.Categories[0] != "dev" {
		t.Errorf("Categories = %v, want [dev notes]", meta.Categories)
	}
	if !meta.IsPublished() {
		t.Error("post without published field should be published")
	}
}

func TestParsePostMetaUnpublished(t *testing.T) {
	meta, err := ParsePostMeta("---\ntitle: Draft\npublished: false\n---\n")
	if err != nil {
		t.Fatalf("ParsePostMeta failed: %v", err)
	}
	if meta.IsPublished() {
		t.Error("expected published: false to be respected")
	}
}

func TestDecodeFrontmatter(t *testing.T) {
	var out map[string]any

	found, err := DecodeFrontmatter("no front matter here", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected found = false without front matter")
	}

	found, err = DecodeFrontmatter("---\ntitle: [unclosed\n---\n", &out)
	if !found {
		t.Error("expected found = true for a front matter block")
	}
	if err == nil {
		t.Error("expected YAML error for malformed front matter")
	}
}
