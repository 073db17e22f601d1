package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/mkcourses/internal/courses"
)

func TestPrintTree_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, PrintTree(&courses.Catalog{Index: courses.Index{}}, &buf, false))

	assert.Contains(t, buf.String(), "No courses found.")
	assert.Contains(t, buf.String(), "Total size:")
}

func TestPrintTree_SortedAndColoured(t *testing.T) {
	catalog := &courses.Catalog{
		Index: courses.Index{
			"Zoology": {"Birds": {"md": {"owls.md"}}},
			"Art":     {"Baroque": {"jpg": {"bernini.jpg", "caravaggio.jpg"}}},
		},
		CourseCount:  2,
		ChapterCount: 2,
		FileCount:    3,
		TotalBytes:   2048,
	}

	var plain bytes.Buffer
	require.NoError(t, PrintTree(catalog, &plain, false))

	out := plain.String()
	assert.Less(t, bytes.Index(plain.Bytes(), []byte("Art")), bytes.Index(plain.Bytes(), []byte("Zoology")))
	assert.Contains(t, out, "bernini.jpg, caravaggio.jpg")
	assert.Contains(t, out, "2.0 KiB (2048 bytes)")

	var colored bytes.Buffer
	require.NoError(t, PrintTree(catalog, &colored, true))
	assert.Contains(t, colored.String(), "\x1b[")
}

func TestPrintTree_TotalFilesFromIndex(t *testing.T) {
	catalog := &courses.Catalog{
		Index: courses.Index{
			"Art": {"Baroque": {"jpg": {"bernini.jpg", "caravaggio.jpg"}, "md": {"notes.md"}}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, PrintTree(catalog, &buf, false))

	assert.Regexp(t, `Total files:\s+3\n`, buf.String())
}
