package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/dotcommander/tidy/internal/check"
	"github.com/dotcommander/tidy/internal/config"
	"github.com/dotcommander/tidy/internal/output"
	"github.com/dotcommander/tidy/internal/project"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// exitFunc is replaced in tests.
var exitFunc = os.Exit

var (
	configPath   string
	rootPath     string
	debug        bool
	quiet        bool
	verbose      bool
	noColor      bool
	outputFormat string
	outputFile   string
)

var rootCmd = &cobra.Command{
	Use:   "tidy",
	Short: "tidy - a configurable style checker",
	Long: `tidy checks source files for style problems: lines that are too long,
forbidden content and inconsistent indentation.

Files are selected with the include and exclude glob patterns of the
config file (.tidy.toml in the project root by default). Every problem is
reported with its file, line and column; the exit status is 1 when any
check fails.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		passed, err := runTidy(cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			fmt.Fprintln(cmd.ErrOrStderr(), "Exiting.")
			exitFunc(1)
			return
		}
		if !passed {
			exitFunc(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default <root>/"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Project root directory (auto-detected if not specified)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the success message")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "List every checked file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", output.FormatConsole, "Output format (console|json|yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for json and yaml reports")

	for _, name := range []string{"config", "root", "debug", "quiet", "verbose", "no-color", "format", "output"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig lets TIDY_* environment variables stand in for flags.
func initConfig() {
	viper.SetEnvPrefix("TIDY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// runTidy loads the config, checks the selected files and renders the
// result. It reports whether every check passed; err is only set for
// failures that stop the run.
func runTidy(out, errOut io.Writer) (bool, error) {
	log := setupLogger(errOut, viper.GetBool("debug"))

	format := viper.GetString("format")
	if !output.ValidFormat(format) {
		return false, fmt.Errorf("unsupported format: %s", format)
	}

	info, err := detectProject(viper.GetString("root"))
	if err != nil {
		return false, fmt.Errorf("error detecting project root: %w", err)
	}
	log.WithFields(logrus.Fields{
		"root":       info.Root,
		"git":        info.HasGit,
		"has_config": info.HasConfig,
	}).Debug("project detected")

	cfgFile := viper.GetString("config")
	if cfgFile == "" {
		cfgFile = info.ConfigFile
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return false, err
	}
	indentation := "off"
	if cfg.IndentationStyle != nil {
		indentation = cfg.IndentationStyle.String()
	}
	log.WithFields(logrus.Fields{
		"file":        cfgFile,
		"include":     cfg.Include,
		"exclude":     cfg.Exclude,
		"forbidden":   cfg.ForbiddenContent.Len(),
		"indentation": indentation,
	}).Debug("config loaded")

	result, err := check.NewEngine(cfg, check.Options{Root: displayRoot(info.Root), Logger: log}).Run()
	if err != nil {
		return false, err
	}

	formatter, err := output.New(format, output.Options{
		Quiet:      viper.GetBool("quiet"),
		Verbose:    viper.GetBool("verbose"),
		Colorize:   !viper.GetBool("no-color") && isTerminal(out),
		OutputFile: viper.GetString("output"),
		Version:    Version,
		Out:        out,
		ErrOut:     errOut,
	})
	if err != nil {
		return false, err
	}
	if err := formatter.Format(result); err != nil {
		return false, fmt.Errorf("error formatting output: %w", err)
	}

	return result.Passed(), nil
}

// detectProject resolves the explicit root, or searches upwards from the
// working directory when none is given.
func detectProject(root string) (*project.Info, error) {
	if root == "" {
		found, err := project.FindProjectRoot(".")
		if err != nil {
			return nil, err
		}
		root = found
	}
	return project.Detect(filepath.Clean(root))
}

// displayRoot makes root relative to the working directory when possible,
// so reported paths stay short.
func displayRoot(root string) string {
	wd, err := os.Getwd()
	if err != nil {
		return root
	}
	rel, err := filepath.Rel(wd, root)
	if err != nil {
		return root
	}
	return rel
}

func setupLogger(w io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	logger.SetLevel(logrus.InfoLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
