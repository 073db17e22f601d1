package courses

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// IndexFileName is the file Write creates inside the scanned directory.
const IndexFileName = "index.json"

// Encode renders the index as indented JSON followed by a newline.
// Map keys are sorted by the encoder, so equal indexes encode to equal bytes.
func Encode(index Index) ([]byte, error) {
	if index == nil {
		index = Index{}
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding index: %w", err)
	}

	return append(data, '\n'), nil
}

// Write stores the index as IndexFileName inside root, replacing any previous file.
// In dry-run mode nothing is written and a warning is logged instead.
// It returns the path of the index file.
func Write(root string, index Index, dryRun bool, log logrus.FieldLogger) (string, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	path := filepath.Join(root, IndexFileName)

	if dryRun {
		log.Warn("Dry-run enabled, not writing to disk.")

		return path, nil
	}

	data, err := Encode(index)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // The index is meant to be world readable
		return "", fmt.Errorf("writing %q: %w", path, err)
	}

	log.Debugf("Wrote %d bytes to %s", len(data), filepath.ToSlash(path))

	return path, nil
}
