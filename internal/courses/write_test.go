package courses

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, root string, dryRun bool) (string, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	catalog := scan(t, Options{Path: root, Logger: logger})

	path, err := Write(root, catalog.Index, dryRun, logger)
	require.NoError(t, err)

	return path, hook
}

func TestWrite_EmptyIndex(t *testing.T) {
	root := t.TempDir()

	path, _ := generate(t, root, false)
	assert.Equal(t, filepath.Join(root, IndexFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestWrite_MatchesIndexShape(t *testing.T) {
	root := t.TempDir()
	write(t, root, "CourseA/Chapter1/notes.pdf", "pdf")
	write(t, root, "CourseA/Chapter1/notes.md", "md")

	path, _ := generate(t, root, false)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"CourseA": {"Chapter1": {"pdf": ["notes.pdf"], "md": ["notes.md"]}}}`, string(data))

	var decoded Index
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Index{"CourseA": Course{"Chapter1": Chapter{"pdf": {"notes.pdf"}, "md": {"notes.md"}}}}, decoded)
}

func TestWrite_DryRunLeavesDiskUntouched(t *testing.T) {
	root := t.TempDir()
	write(t, root, "Course/Chapter/a.md", "a")

	_, hook := generate(t, root, true)

	_, err := os.Stat(filepath.Join(root, IndexFileName))
	assert.ErrorIs(t, err, os.ErrNotExist)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.WarnLevel, last.Level)
	assert.Equal(t, "Dry-run enabled, not writing to disk.", last.Message)
}

func TestWrite_DryRunKeepsExistingIndex(t *testing.T) {
	root := t.TempDir()
	write(t, root, "Course/Chapter/a.md", "a")
	existing := write(t, root, IndexFileName, `{"stale": {}}`)

	generate(t, root, true)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, `{"stale": {}}`, string(data))
}

func TestWrite_OverwritesExistingIndex(t *testing.T) {
	root := t.TempDir()
	write(t, root, "Course/Chapter/a.md", "a")
	existing := write(t, root, IndexFileName, `{"stale": {"old": {"txt": ["a very long stale entry.txt"]}}}`)

	generate(t, root, false)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Course": {"Chapter": {"md": ["a.md"]}}}`, string(data))
}

func TestWrite_Deterministic(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{
		"Zoology/Birds/owls.md",
		"Zoology/Birds/eagles.md",
		"Zoology/Birds/eagles.pdf",
		"Art/Baroque/caravaggio.jpg",
		"Art/Baroque/bernini.jpg",
		"Art/Renaissance/notes",
	} {
		write(t, root, rel, rel)
	}

	path, _ := generate(t, root, false)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	generate(t, root, false)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEncode_NilIndex(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}
