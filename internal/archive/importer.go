package archive

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gerunddev/termfolio/internal/config"
	"github.com/gerunddev/termfolio/internal/convert"
	"github.com/gerunddev/termfolio/internal/logger"
	"github.com/gerunddev/termfolio/internal/state"
)

// Extensions lists the archive file extensions picked up by the importer
var Extensions = []string{".md", ".markdown"}

var datePrefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-`)

// Post describes a single imported post
type Post struct {
	Slug   string
	Title  string
	Date   string
	Tags   []string
	Source string
	Dest   string
}

// Result represents the result of an import run
type Result struct {
	RunID     string
	Posts     []Post
	Skipped   int
	Errors    []error
	StartTime time.Time
	EndTime   time.Time
}

// Importer converts a Jekyll _posts archive into site content files
type Importer struct {
	config    *config.Config
	state     *state.State
	converter *convert.JekyllConverter
	log       *logger.Logger
	dryRun    bool
}

// NewImporter creates a new importer instance
func NewImporter(cfg *config.Config, st *state.State) *Importer {
	return &Importer{
		config:    cfg,
		state:     st,
		converter: convert.NewJekyllConverter(cfg.AssetPrefix),
		log:       logger.Discard(),
	}
}

// SetLogger sets the logger used for import events
func (im *Importer) SetLogger(l *logger.Logger) {
	im.log = l
}

// SetDryRun makes Import convert posts without writing output or state
func (im *Importer) SetDryRun(dryRun bool) {
	im.dryRun = dryRun
}

// Import performs a one-shot import of every changed post in the archive
func (im *Importer) Import() (*Result, error) {
	result := &Result{
		RunID:     uuid.New().String(),
		StartTime: time.Now(),
	}

	im.log.ImportStarted(result.RunID, im.config.ArchiveDir, im.config.ContentDir)

	files, err := ScanDirectory(im.config.ArchiveDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan archive: %w", err)
	}

	if !im.dryRun {
		if err := os.MkdirAll(im.config.ContentDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create content directory: %w", err)
		}
	}

	// slug -> first archive post claiming it
	seen := make(map[string]string, len(files))

	for _, path := range files {
		slug := Slug(path)
		if prev, ok := seen[slug]; ok {
			err := fmt.Errorf("%s: slug %q already used by %s", path, slug, prev)
			im.log.FileError(path, err)
			result.Errors = append(result.Errors, err)
			continue
		}
		seen[slug] = path

		post, imported, err := im.importFile(path)
		if err != nil {
			im.log.FileError(path, err)
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if !imported {
			result.Skipped++
			continue
		}
		result.Posts = append(result.Posts, post)
	}

	if !im.dryRun {
		for _, path := range im.state.Prune() {
			im.log.Skipped(path, "removed from archive")
		}
	}

	SortPosts(result.Posts)
	result.EndTime = time.Now()

	if !im.dryRun {
		im.state.LastRun = &state.RunInfo{
			ID:        result.RunID,
			Finished:  result.EndTime,
			Converted: len(result.Posts),
			Skipped:   result.Skipped,
			Errors:    len(result.Errors),
		}
	}

	im.log.ImportCompleted(result.RunID, len(result.Posts), result.Skipped, len(result.Errors), result.EndTime.Sub(result.StartTime))

	return result, nil
}

// importFile converts a single post. The bool result is false when the post was skipped.
func (im *Importer) importFile(path string) (Post, bool, error) {
	changed, err := im.state.HasChanged(path)
	if err != nil {
		return Post{}, false, err
	}
	if !changed {
		im.log.Skipped(path, "unchanged")
		return Post{}, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Post{}, false, fmt.Errorf("failed to read post: %w", err)
	}
	source := string(data)

	meta, err := convert.ParsePostMeta(source)
	if err != nil {
		// Fall back to the flat key/value reading
		im.log.Warn("front matter is not valid YAML", "file", path, "error", err)
		flat := convert.ExtractFrontmatter(source)
		meta = convert.PostMeta{Title: flat["title"], Date: flat["date"]}
	}
	if !meta.IsPublished() {
		im.log.Skipped(path, "unpublished")
		return Post{}, false, nil
	}

	slug := Slug(path)
	dest := filepath.Join(im.config.ContentDir, slug+".md")
	post := Post{
		Slug:   slug,
		Title:  meta.Title,
		Date:   meta.Date,
		Tags:   meta.Tags,
		Source: path,
		Dest:   dest,
	}
	if post.Title == "" {
		post.Title = slug
	}

	converted := im.converter.Convert(source)

	if im.dryRun {
		return post, true, nil
	}

	if err := os.WriteFile(dest, []byte(converted), 0644); err != nil {
		return Post{}, false, fmt.Errorf("failed to write %s: %w", dest, err)
	}
	if err := im.state.Update(path, dest); err != nil {
		im.log.StateError("update", err)
		return Post{}, false, err
	}

	im.log.PostConverted(path, dest, slug)
	return post, true, nil
}

// Slug derives the content name of a post from its archive filename.
// 2024-01-31-hello-world.md becomes hello-world.
func Slug(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return datePrefixRe.ReplaceAllString(base, "")
}

// SortPosts orders posts newest first, then by slug
func SortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].Slug < posts[j].Slug
	})
}

// ScanDirectory returns every archive post under dir, sorted by path
func ScanDirectory(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && isPost(path) {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func isPost(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// String returns a human-readable summary of the import result
func (r *Result) String() string {
	duration := r.EndTime.Sub(r.StartTime)
	return fmt.Sprintf(
		"Import complete: %d posts converted, %d skipped, %d errors (took %v)",
		len(r.Posts),
		r.Skipped,
		len(r.Errors),
		duration.Round(time.Millisecond),
	)
}
