package courses

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// HiddenPrefix marks courses, chapters and files that are never indexed.
	HiddenPrefix = "."
	// NoExtension is the bucket for chapter files without an extension.
	NoExtension = "(none)"
)

// Extensionless selects what happens to chapter files without an extension.
type Extensionless string

const (
	// Bucket files them under NoExtension.
	Bucket Extensionless = "bucket"
	// Skip leaves them out of the index.
	Skip Extensionless = "skip"
)

// ParseExtensionless validates a policy name. An empty name selects Bucket.
func ParseExtensionless(name string) (Extensionless, error) {
	switch policy := Extensionless(strings.ToLower(strings.TrimSpace(name))); policy {
	case "":
		return Bucket, nil
	case Bucket, Skip:
		return policy, nil
	default:
		return "", fmt.Errorf("unknown extensionless policy %q: must be one of [%s %s]", name, Bucket, Skip)
	}
}

// Catalog is the result of a scan.
type Catalog struct {
	// Index is the course hierarchy.
	Index Index `json:"index"`
	// CourseCount is the number of courses found.
	CourseCount int `json:"course_count"`
	// ChapterCount is the number of chapters found.
	ChapterCount int `json:"chapter_count"`
	// FileCount is the number of indexed files.
	FileCount int64 `json:"file_count"`
	// TotalBytes is the cumulative size of the indexed files.
	TotalBytes int64 `json:"total_bytes"`
	// Elapsed is the time taken by the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a scan.
type Options struct {
	// Path is the notes directory to scan.
	Path string
	// Extensionless is the policy for files without an extension (empty = Bucket).
	Extensionless Extensionless
	// Progress, if set, receives the running file and byte counts.
	Progress func(files, bytes int64)
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Logger receives scan logging (nil = logrus standard logger).
	Logger logrus.FieldLogger
}

// collector aggregates the index from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu         sync.Mutex
	index      Index
	chapters   int
	fileCount  int64
	totalBytes int64
}

func newCollector() *collector {
	return &collector{index: make(Index)}
}

// course registers a course directory. Registering twice is harmless.
func (c *collector) course(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.courseLocked(name)
}

func (c *collector) courseLocked(name string) Course {
	entry, ok := c.index[name]
	if !ok {
		entry = make(Course)
		c.index[name] = entry
	}

	return entry
}

// chapter registers a chapter directory and its course.
func (c *collector) chapter(course, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.chapterLocked(course, name)
}

func (c *collector) chapterLocked(course, name string) Chapter {
	entry := c.courseLocked(course)

	chapter, ok := entry[name]
	if !ok {
		chapter = make(Chapter)
		entry[name] = chapter
		c.chapters++
	}

	return chapter
}

// add records a chapter file under its extension.
func (c *collector) add(course, chapter, ext, name string, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := c.chapterLocked(course, chapter)
	entry[ext] = append(entry[ext], name)

	c.fileCount++
	c.totalBytes += size
}

// progress returns the running counters.
func (c *collector) progress() (int64, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalBytes
}

// finalize produces the Catalog. File lists are sorted so that the index does
// not depend on directory listing order.
func (c *collector) finalize() *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, course := range c.index {
		for _, chapter := range course {
			for _, files := range chapter {
				sort.Strings(files)
			}
		}
	}

	return &Catalog{
		Index:        c.index,
		CourseCount:  len(c.index),
		ChapterCount: c.chapters,
		FileCount:    c.fileCount,
		TotalBytes:   c.totalBytes,
	}
}
