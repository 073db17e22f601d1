package courses

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is matched by errors returned when a course is missing from an Index.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a course name that is not present in an Index.
type NotFoundError struct {
	// Course is the name that was looked up.
	Course string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q is not in the courses list", e.Course)
}

// Is makes NotFoundError match ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Chapter maps a file extension (without the leading dot) to the chapter files carrying it.
type Chapter map[string][]string

// Course maps a chapter name to its files.
type Course map[string]Chapter

// Index maps a course name to its chapters.
type Index map[string]Course

// Courses returns the course names in sorted order.
func (idx Index) Courses() []string {
	return Names(idx)
}

// Chapters returns the chapters of the named course.
func (idx Index) Chapters(course string) (Course, error) {
	chapters, ok := idx[course]
	if !ok {
		return nil, &NotFoundError{Course: course}
	}

	return chapters, nil
}

// FileCount returns the number of filenames recorded in the index.
func (idx Index) FileCount() int {
	count := 0

	for _, course := range idx {
		for _, chapter := range course {
			for _, files := range chapter {
				count += len(files)
			}
		}
	}

	return count
}

// Names returns the keys of a course or chapter in sorted order.
func Names[M ~map[string]V, V any](m M) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
