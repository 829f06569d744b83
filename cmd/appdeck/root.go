package main

import (
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/conn-castle/appdeck/internal/catalog"
	"github.com/conn-castle/appdeck/internal/logging"
	"github.com/conn-castle/appdeck/internal/messages"
	"github.com/conn-castle/appdeck/internal/terminal"
	"github.com/conn-castle/appdeck/internal/wizard"
)

var (
	isTerminal   = terminal.IsInteractive
	activeLogger = logging.Nop()
	runWizard    = func(cmd *cobra.Command, opts wizard.Options) error {
		return wizard.RunWithWriter(cmd.Context(), wizard.NewHuhUI(), opts, cmd.OutOrStdout())
	}
)

// rootFlags carries the persistent flags shared by all commands.
type rootFlags struct {
	catalogPath string
	logFile     string
	logLevel    string
	noColor     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var dryRun bool

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor {
				color.NoColor = true
			}
			activeLogger = buildLogger(flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// The bare command is the interactive wizard; without a
			// terminal there is nothing sensible to run.
			if !isTerminal() {
				return cmd.Help()
			}
			cat, err := loadCatalog(flags.catalogPath)
			if err != nil {
				return err
			}
			return runWizard(cmd, wizard.Options{
				DryRun:  dryRun,
				Catalog: cat,
				Logger:  activeLogger,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", messages.FlagCatalog)
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", messages.FlagLogFile)
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", messages.FlagLogLevel)
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, messages.FlagNoColor)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.InstallFlagDryRun)

	cmd.AddCommand(newInstallCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

// buildLogger returns a disabled logger unless a logging flag was set.
func buildLogger(flags *rootFlags) *zerolog.Logger {
	if flags.logFile == "" && flags.logLevel == "" {
		return logging.Nop()
	}
	return logging.New(logging.Config{
		Level:   flags.logLevel,
		LogFile: flags.logFile,
		NoColor: flags.noColor,
	})
}

// loadCatalog loads the override file when given, the embedded catalog otherwise.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}
