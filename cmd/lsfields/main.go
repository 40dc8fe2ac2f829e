package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/lsfields/cmd"
	"github.com/mutagen-io/lsfields/pkg/configuration"
	"github.com/mutagen-io/lsfields/pkg/filesystem"
	"github.com/mutagen-io/lsfields/pkg/must"
)

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, arguments []string) error {
	// Load the configuration and apply command line overrides.
	configurationPath := rootConfiguration.configuration
	if configurationPath == "" {
		if path, err := configuration.DefaultPath(); err == nil {
			configurationPath = path
		}
	}
	config := configuration.Default()
	if configurationPath != "" {
		if c, err := configuration.Load(configurationPath); err != nil {
			return err
		} else {
			config = c
		}
	}
	if err := applyFlags(config, command.Flags()); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	// Configure output styling and logging.
	cmd.ConfigureColor(config.Colors.Mode)
	logger, closer := newLogger(config)
	if closer != nil {
		defer must.Close(closer, logger)
	}

	// Set up rendering.
	renderer := newRenderer(config, rootConfiguration.octal, logger)

	// Set up cancellation on termination signals.
	ctx, cancel := cmd.TerminationContext(context.Background())
	defer cancel()

	// Default to the working directory.
	paths := arguments
	if len(paths) == 0 {
		paths = []string{"."}
	}

	// List each path.
	var failed bool
	for i, path := range paths {
		// Compute entries.
		entries, err := filesystem.List(path)
		if err != nil {
			cmd.Error(errors.Wrapf(err, "unable to list %s", path))
			failed = true
			continue
		}
		entries = filterEntries(entries, config, rootConfiguration.all)

		// Render entries.
		rows, err := renderer.rows(ctx, entries, rootConfiguration.parallelism)
		if err != nil {
			return err
		}

		// Print a heading if there are multiple paths.
		if len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(color.Output)
			}
			fmt.Fprintf(color.Output, "%s:\n", path)
		}

		// Print the table.
		table := &table{alignments: renderer.alignments(), rows: rows}
		if err := table.write(color.Output); err != nil {
			return errors.Wrap(err, "unable to write listing")
		}
	}

	// Check for failures.
	if failed {
		return errors.New("unable to list one or more paths")
	}

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:          "lsfields [<path>...]",
	Short:        "List filesystem entries and their metadata fields",
	Args:         cobra.ArbitraryArgs,
	Run:          cmd.Mainify(rootMain),
	SilenceUsage: true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// configuration is the path of the configuration file.
	configuration string
	// all indicates whether or not to list hidden entries.
	all bool
	// numeric indicates whether or not to display numeric owners and groups.
	numeric bool
	// octal indicates whether or not to display octal permissions.
	octal bool
	// binary indicates whether or not to use binary size prefixes.
	binary bool
	// bytes indicates whether or not to display raw byte counts.
	bytes bool
	// time is the name of the timestamp to display.
	time string
	// utc indicates whether or not to display timestamps in UTC.
	utc bool
	// exclude are additional exclusion patterns.
	exclude []string
	// color is the name of the color mode.
	color string
	// logLevel is the name of the log level.
	logLevel string
	// logFile is the path of the log file.
	logFile string
	// parallelism is the maximum number of entries rendered concurrently.
	parallelism int
}

func init() {
	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Wire up listing flags.
	flags.StringVarP(&rootConfiguration.configuration, "config", "c", "", "Specify the configuration file path")
	flags.BoolVarP(&rootConfiguration.all, "all", "a", false, "Show hidden entries")
	flags.BoolVarP(&rootConfiguration.numeric, "numeric", "n", false, "Show numeric user and group identifiers")
	flags.BoolVarP(&rootConfiguration.octal, "octal", "o", false, "Show octal permissions")
	flags.BoolVarP(&rootConfiguration.binary, "binary", "b", false, "Show sizes with binary prefixes")
	flags.BoolVarP(&rootConfiguration.bytes, "bytes", "B", false, "Show sizes in bytes")
	flags.StringVarP(&rootConfiguration.time, "time", "t", "", "Specify the timestamp to show (modified|accessed|changed|created)")
	flags.BoolVar(&rootConfiguration.utc, "utc", false, "Show timestamps in UTC")
	flags.StringSliceVarP(&rootConfiguration.exclude, "exclude", "I", nil, "Exclude entries matching the specified pattern")
	flags.StringVar(&rootConfiguration.color, "color", "", "Specify when to use color (auto|always|never)")
	flags.StringVar(&rootConfiguration.logLevel, "log-level", "", "Specify the log level (disabled|error|warn|info|debug|trace)")
	flags.StringVar(&rootConfiguration.logFile, "log-file", "", "Write logs to the specified file")
	flags.IntVarP(&rootConfiguration.parallelism, "parallelism", "j", runtime.NumCPU(), "Specify the maximum number of entries rendered concurrently")
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
