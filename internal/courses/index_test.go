package courses

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIndex() Index {
	return Index{
		"Physics": Course{
			"Optics":    Chapter{"md": {"lenses.md", "mirrors.md"}, "pdf": {"lenses.pdf"}},
			"Mechanics": Chapter{},
		},
		"Biology": Course{},
	}
}

func TestIndex_Courses(t *testing.T) {
	assert.Equal(t, []string{"Biology", "Physics"}, sampleIndex().Courses())
	assert.Empty(t, Index{}.Courses())
}

func TestIndex_Chapters(t *testing.T) {
	chapters, err := sampleIndex().Chapters("Physics")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mechanics", "Optics"}, Names(chapters))
	assert.Equal(t, []string{"lenses.md", "mirrors.md"}, chapters["Optics"]["md"])
}

func TestIndex_Chapters_NotFound(t *testing.T) {
	chapters, err := sampleIndex().Chapters("Astronomy")
	assert.Nil(t, chapters)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"Astronomy"`)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Astronomy", notFound.Course)
}

func TestIndex_FileCount(t *testing.T) {
	assert.Equal(t, 3, sampleIndex().FileCount())
	assert.Zero(t, Index(nil).FileCount())
}

func TestParseExtensionless(t *testing.T) {
	tests := []struct {
		in      string
		want    Extensionless
		wantErr bool
	}{
		{in: "", want: Bucket},
		{in: "bucket", want: Bucket},
		{in: " SKIP ", want: Skip},
		{in: "ignore", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseExtensionless(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)

			continue
		}

		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
