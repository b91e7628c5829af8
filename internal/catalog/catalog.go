// Package catalog enumerates the read-only jobs directory tree. The layout is
// fixed: <root>/jobs/<JobFolder>/ holds candidate CV files plus at most one
// job-description text file. Each scan reads the tree fresh; nothing is cached
// or watched.
package catalog

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/andrei/hirescope/internal/slug"
)

// JobFolder is one job directory and its candidate files. Enumeration order
// follows the underlying directory listing; callers must not rely on it being
// alphabetical.
type JobFolder struct {
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	CVFilenames     []string `json:"cvFilenames"`
	DescriptionPath string   `json:"-"`
}

// NotFoundError reports an absent jobs root or job folder, distinct from an
// empty listing.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("directory not found: %s", e.Path)
}

// readDir is a seam for tests that need a folder to fail enumeration.
var readDir = os.ReadDir

// CVFilter selects which files in a job folder count as candidate CVs.
type CVFilter func(filename string) bool

// StrictCV matches the canonical <name>-cv.pdf naming.
func StrictCV(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), slug.CVSuffix)
}

// AnyPDF matches every PDF; the looser filter some listing endpoints use.
func AnyPDF(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

// Scanner walks the jobs tree under Root.
type Scanner struct {
	Root   string
	Filter CVFilter
}

// New creates a scanner over <root>/jobs with the strict CV filter.
func New(root string) *Scanner {
	return &Scanner{Root: root, Filter: StrictCV}
}

func (s *Scanner) jobsDir() string {
	return filepath.Join(s.Root, "jobs")
}

// Scan enumerates all job folders and their CV files. A missing jobs root is a
// NotFoundError; a job folder that fails to enumerate is logged and skipped so
// one bad folder never hides the rest. Per-folder reads run concurrently,
// results keep enumeration order.
func (s *Scanner) Scan(ctx context.Context) ([]JobFolder, error) {
	entries, err := readDir(s.jobsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: s.jobsDir()}
		}
		return nil, fmt.Errorf("failed to read jobs directory %s: %w", s.jobsDir(), err)
	}

	var dirs []os.DirEntry
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e)
		}
	}

	folders := make([]*JobFolder, len(dirs))
	g, _ := errgroup.WithContext(ctx)
	for i, dir := range dirs {
		g.Go(func() error {
			folder, err := s.readFolder(dir.Name())
			if err != nil {
				log.Printf("[scan] skipping job folder %s: %v", dir.Name(), err)
				return nil
			}
			folders[i] = folder
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]JobFolder, 0, len(folders))
	for _, f := range folders {
		if f != nil {
			out = append(out, *f)
		}
	}
	return out, nil
}

// Find returns the job folder whose slug matches id, or a NotFoundError.
func (s *Scanner) Find(ctx context.Context, id string) (*JobFolder, error) {
	folders, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}
	for i := range folders {
		if folders[i].Slug == id {
			return &folders[i], nil
		}
	}
	return nil, &NotFoundError{Path: filepath.Join(s.jobsDir(), id)}
}

func (s *Scanner) readFolder(name string) (*JobFolder, error) {
	dir := filepath.Join(s.jobsDir(), name)
	entries, err := readDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	folder := &JobFolder{Name: name, Slug: slug.Make(name)}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		filename := e.Name()
		if s.Filter(filename) {
			folder.CVFilenames = append(folder.CVFilenames, filename)
			continue
		}
		// First description file in enumeration order wins; later ones are
		// silently ignored.
		if folder.DescriptionPath == "" && isDescriptionFile(filename) {
			folder.DescriptionPath = filepath.Join(dir, filename)
		}
	}
	return folder, nil
}

// Description reads a job folder's description file. No description file is
// an empty string, not an error.
func (s *Scanner) Description(folder *JobFolder) (string, error) {
	if folder.DescriptionPath == "" {
		return "", nil
	}
	data, err := os.ReadFile(folder.DescriptionPath)
	if err != nil {
		return "", fmt.Errorf("failed to read description %s: %w", folder.DescriptionPath, err)
	}
	return string(data), nil
}

func isDescriptionFile(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.Contains(lower, "job-description") && strings.HasSuffix(lower, ".txt")
}
