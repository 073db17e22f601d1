package courses

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/sirupsen/logrus"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Levels of the notes directory, counted from the scanned root.
const (
	courseDepth  = 1
	chapterDepth = 2
	fileDepth    = 3
)

// relParts splits path relative to root into its components.
func relParts(path, root string) []string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return nil
	}

	return strings.Split(rel, string(filepath.Separator))
}

// extension returns the final dot-suffix of name without the dot.
func extension(name string) string {
	return strings.TrimPrefix(filepath.Ext(name), ".")
}

// target returns the file info of the entry, following symlinks.
// A dangling symlink yields nil info and no error.
func target(path string, d fs.DirEntry) (fs.FileInfo, error) {
	info, err := fastwalk.StatDirEntry(path, d)
	if err == nil {
		return info, nil
	}

	if d.Type()&fs.ModeSymlink != 0 && errors.Is(err, fs.ErrNotExist) {
		return nil, nil //nolint:nilnil // Dangling links are skipped, not failed
	}

	return nil, fmt.Errorf("reading file info of %q: %w", path, err)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.progress())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Scan walks the notes directory at opt.Path and builds its Index.
//
// Directories directly below the root are courses, directories below a course
// are chapters and regular files inside a chapter are indexed by extension.
// Entries starting with HiddenPrefix are ignored at every level, and anything
// nested deeper than a chapter file is pruned.
//
// Errors reading the tree abort the scan and are returned. The walk can be
// cancelled via ctx. Progress updates are sent to opt.Progress if provided.
func Scan(ctx context.Context, opt Options) (*Catalog, error) {
	log := opt.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	policy, err := ParseExtensionless(string(opt.Extensionless))
	if err != nil {
		return nil, err
	}

	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	collector := newCollector()

	// Child context stops the progress reporter once the walk returns
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, opt.Progress, opt.ProgressInterval)

	start := time.Now()

	// Symlinked courses, chapters and files are indexed like their targets.
	// The level pruning below keeps the followed walk three levels deep.
	conf := &fastwalk.Config{
		Follow: true,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %q: %w", path, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		parts := relParts(path, opt.Path)
		if len(parts) == 0 {
			return nil
		}

		name := d.Name()

		// SkipDir on a symlink stops fastwalk from following it
		linked := d.Type()&fs.ModeSymlink != 0

		if isHidden(name) {
			if d.IsDir() || linked {
				log.Debugf("Skipping hidden entry: %s", filepath.ToSlash(path))

				return filepath.SkipDir
			}

			return nil
		}

		if len(parts) > fileDepth {
			if d.IsDir() || linked {
				return filepath.SkipDir
			}

			return nil
		}

		info, err := target(path, d)
		if err != nil {
			return err
		}

		if info == nil {
			log.Debugf("Skipping dangling symlink: %s", filepath.ToSlash(path))

			return nil
		}

		switch len(parts) {
		case courseDepth:
			if info.IsDir() {
				log.Debugf("Found course: %s", name)
				collector.course(name)
			}

			return nil
		case chapterDepth:
			if info.IsDir() {
				log.Debugf("--- Found chapter: %s", name)
				collector.chapter(parts[0], name)
			}

			return nil
		}

		if info.IsDir() {
			return filepath.SkipDir
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		ext := extension(name)
		if ext == "" {
			if policy == Skip {
				log.Debugf("------ Skipping file without extension: %s", name)

				return nil
			}

			ext = NoExtension
		}

		log.Debugf("------ Found file: %s", name)
		collector.add(parts[0], parts[1], ext, name, info.Size())

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	catalog := collector.finalize()
	catalog.Elapsed = time.Since(start)

	log.Infof("Found %d files!", catalog.FileCount)

	return catalog, nil
}
