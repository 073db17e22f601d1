// Package courses builds the course index of a notes directory.
//
// A notes directory holds courses, each course holds chapters and each chapter
// holds files. Scan walks the three levels using fastwalk for parallel
// traversal and groups the chapter files by extension. Write persists the
// resulting Index as index.json inside the scanned directory.
package courses
