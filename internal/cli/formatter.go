package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/idelchi/mkcourses/internal/courses"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// palette colours the tree output.
type palette struct {
	course  *color.Color
	chapter *color.Color
	ext     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		course:  color.New(color.Bold),
		chapter: color.New(color.FgCyan),
		ext:     color.New(color.FgYellow),
	}

	for _, c := range []*color.Color{p.course, p.chapter, p.ext} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// PrintJSON outputs the index in the same format as index.json.
func PrintJSON(index courses.Index, writer io.Writer) error {
	data, err := courses.Encode(index)
	if err != nil {
		return err
	}

	_, err = writer.Write(data)

	return err
}

// PrintTree outputs the catalog as an indented tree followed by a summary.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTree(catalog *courses.Catalog, writer io.Writer, colored bool) error {
	p := newPalette(colored)
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	if len(catalog.Index) == 0 {
		fmt.Fprintln(w, "No courses found.")
	}

	for _, name := range catalog.Index.Courses() {
		course := catalog.Index[name]
		fmt.Fprintln(w, p.course.Sprint(name))

		if len(course) == 0 {
			fmt.Fprintln(w, "  (no chapters)")
		}

		for _, chapterName := range courses.Names(course) {
			chapter := course[chapterName]
			fmt.Fprintf(w, "  %s\n", p.chapter.Sprint(chapterName))

			for _, ext := range courses.Names(chapter) {
				fmt.Fprintf(w, "    %s:\t%s\n", p.ext.Sprint(ext), strings.Join(chapter[ext], ", "))
			}
		}
	}

	fmt.Fprintln(w, "\nStats:\t")
	fmt.Fprintf(w, "Courses:\t%s\n", humanize.Comma(int64(catalog.CourseCount)))
	fmt.Fprintf(w, "Chapters:\t%s\n", humanize.Comma(int64(catalog.ChapterCount)))
	fmt.Fprintf(w, "Total files:\t%s\n", humanize.Comma(int64(catalog.Index.FileCount())))
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(catalog.TotalBytes)), catalog.TotalBytes) //nolint:gosec // Size is never negative
	fmt.Fprintf(w, "\nElapsed:\t%v\n", catalog.Elapsed)

	return w.Flush()
}
