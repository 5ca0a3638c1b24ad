package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elfhdr/elfhdr/internal/elf"
	"github.com/elfhdr/elfhdr/internal/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the elfhdr CLI.
func newRootCmd() *cobra.Command {
	var (
		configFile string
		verbose    bool
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:   "elfhdr <elf-file>",
		Short: "Inspect the header of a 64-bit ELF file",
		Long: `elfhdr reads the first 64 bytes of an ELF file, validates the
identification block and the file header, and prints a field-by-field
listing of the decoded values.

Validation stops at the first malformed field and reports which check
rejected the file.

Examples:
  # Print the header of a binary
  elfhdr ./my-binary

  # Enable verbose logging while decoding
  elfhdr ./my-binary --verbose

EXIT CODES:
  0 - Header decoded successfully
  1 - Invalid arguments, unreadable file, or malformed header`,
		Version:       utils.GetVersionString(),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], configFile, verbose, logFormat)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newVersionCmd creates the version subcommand.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "elfhdr version %s\n", utils.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", utils.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", utils.BuildDate)
		},
	}
}

// runInspect decodes the header of the named file and writes the field
// listing to stdout. The listing carries no trailing newline.
func runInspect(cmd *cobra.Command, path, configFile string, verbose bool, logFormat string) error {
	// Arguments were already validated; from here on errors are runtime
	// failures and the usage text would only bury them.
	cmd.SilenceUsage = true

	var (
		config *utils.Config
		err    error
	)
	if configFile != "" {
		config, err = utils.LoadConfigFromFile(configFile)
	} else {
		config, err = utils.LoadDefaultConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	loggerConfig := utils.LoggerConfig{
		Level:  utils.ParseLogLevel(config.LogLevel),
		Format: utils.ParseLogFormat(config.LogFormat),
	}
	if logFormat != "" {
		loggerConfig.Format = utils.ParseLogFormat(logFormat)
	}
	if verbose {
		loggerConfig.Level = utils.LogLevelDebug
	}
	logger := utils.NewLogger(loggerConfig).WithComponent("elfhdr")

	logger.Infof("Reading ELF file: %s", path)

	header, err := elf.ReadHeader(path)
	if err != nil {
		var perr *elf.ParseError
		if errors.As(err, &perr) && perr.Kind == elf.InvalidMachine {
			logger.Warnf("Unrecognized machine value: %#x", perr.Value)
		}
		return err
	}

	logger.Debugf("Decoded %s header, machine %s", header.Ident.Class, header.Machine)

	fmt.Fprint(cmd.OutOrStdout(), header)
	return nil
}
