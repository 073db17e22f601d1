package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/idelchi/mkcourses/internal/courses"
)

// configureLogger sends untimestamped log output to w.
func configureLogger(log *logrus.Logger, w io.Writer) {
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

// scan runs the scanner, drawing a progress line on stderr when it is a terminal.
func scan(cmd *cobra.Command, options Options, log *logrus.Logger, quiet bool) (*courses.Catalog, error) {
	stderr := cmd.ErrOrStderr()

	enableProgress := !quiet && !options.Debug && isTerminal(stderr)

	opt := scanOptions(options, log)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		opt.Progress = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %s files, %s",
				humanize.Comma(files), humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	log.Infof("Scanning directory: %s", filepath.ToSlash(options.Directory))

	catalog, err := courses.Scan(cmd.Context(), opt)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	return catalog, err
}

func runGenerate(cmd *cobra.Command, options Options, log *logrus.Logger) error {
	catalog, err := scan(cmd, options, log, false)
	if err != nil {
		return err
	}

	log.Info("1/2: Compiling the JSON...")
	log.Infof("2/2: Writing %s...", filepath.ToSlash(filepath.Join(options.Directory, courses.IndexFileName)))

	if _, err := courses.Write(options.Directory, catalog.Index, options.DryRun, log); err != nil {
		return err
	}

	log.Info("All done!")

	return nil
}

func runList(cmd *cobra.Command, options Options, log *logrus.Logger) error {
	catalog, err := scan(cmd, options, log, options.Output == "json")
	if err != nil {
		return err
	}

	log.Info("1/1: Listing courses and associated files...")

	out := cmd.OutOrStdout()

	switch options.Output {
	case "json":
		return PrintJSON(catalog.Index, out)
	default:
		return PrintTree(catalog, out, isTerminal(out))
	}
}
