package cli

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/mkcourses/internal/config"
	"github.com/idelchi/mkcourses/internal/courses"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Options holds the resolved command-line settings.
type Options struct {
	// Directory is the notes directory to scan.
	Directory string
	// DryRun suppresses writing index.json.
	DryRun bool
	// Debug enables debug logging.
	Debug bool
	// Config is an explicit settings file.
	Config string
	// Extensionless is the policy for chapter files without an extension.
	Extensionless string
	// Output is the list output format (tree or json).
	Output string
}

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"tree", "json"}

func bindFlags(flags *pflag.FlagSet, options *Options) {
	flags.StringVarP(&options.Directory, "force-directory", "f", "",
		"Notes directory to scan. Defaults to the \"notes\" folder in the working directory")
	flags.BoolVarP(&options.DryRun, "dryrun", "d", false, "Perform the command without changing anything on disk")
	flags.BoolVarP(&options.Debug, "debug", "D", false, "Enable debug logging")
	flags.StringVarP(&options.Config, "config", "c", "", "Settings file (default: ./"+config.FileName+")")
	flags.StringVar(&options.Extensionless, "extensionless", "",
		"Policy for files without an extension: bucket or skip (default bucket)")
	flags.SortFlags = false
}

// resolve merges the settings file into the flag values and prepares the logger.
func resolve(cmd *cobra.Command, options *Options, log *logrus.Logger) error {
	cfg, err := config.Load(options.Config)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("force-directory") {
		cfg.Directory = options.Directory
	}

	if flags.Changed("extensionless") {
		cfg.Extensionless = options.Extensionless
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	if options.Debug {
		level = logrus.DebugLevel
	}

	log.SetLevel(level)

	if cfg.Source != "" {
		log.Debugf("Loaded configuration file %s", cfg.Source)
	}

	options.Directory = filepath.Clean(cfg.Directory)
	options.Extensionless = string(cfg.Policy())

	return nil
}

// Command builds the command tree.
func (c CLI) Command() *cobra.Command {
	var options Options

	log := logrus.New()

	root := &cobra.Command{
		Use:   "mkcourses",
		Short: "Index the courses and chapters of a notes directory",
		Long: heredoc.Doc(`
			mkcourses indexes a notes directory for the course site.

			The notes directory contains one folder per course, each course contains
			one folder per chapter, and each chapter contains the chapter files.
			Files are grouped by extension. Names starting with '.' are ignored.

			The index is written to index.json inside the notes directory.
			Settings may also be read from mkcourses.yaml, flags take precedence.
		`),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(log, cmd.ErrOrStderr())

			return resolve(cmd, &options, log)
		},
	}

	bindFlags(root.PersistentFlags(), &options)

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Scan the notes directory and write index.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, options, log)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Scan the notes directory and print the index",
		Long: heredoc.Doc(`
			Scan the notes directory and print the index.

			The tree output lists every course, chapter and extension, followed by a summary.
			The json output is the same document generate writes to index.json.
		`),
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, options, log)
		},
	}

	list.Flags().StringVarP(&options.Output, "output", "o", "tree", "Output format: tree or json")

	root.AddCommand(generate, list)

	return root
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}

// scanOptions converts the resolved settings for the scanner.
func scanOptions(options Options, log logrus.FieldLogger) courses.Options {
	return courses.Options{
		Path:          options.Directory,
		Extensionless: courses.Extensionless(options.Extensionless),
		Logger:        log,
	}
}
