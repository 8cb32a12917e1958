package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0xRadioAc7iv/go-employees/core"
	"github.com/0xRadioAc7iv/go-employees/internal"
	"github.com/0xRadioAc7iv/go-employees/internal/console"
	"github.com/0xRadioAc7iv/go-employees/internal/lock"
	"github.com/0xRadioAc7iv/go-employees/internal/logging"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

const configName = "employees"

func newRootCmd() (*cobra.Command, error) {
	v := internal.NewViper()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "employees",
		Short: "employees - interactive employee records kept in a local data file",
		Long: `employees - interactive employee records kept in a local data file.

Every setting can also come from a config file (employees.yaml in the
current or home directory) or from an environment variable named after the
flag with an EMPLOYEES_ prefix, e.g. EMPLOYEES_LOG_LEVEL=debug.
Flags take precedence over environment variables.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfigFile(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, v)
		},
	}

	defaults := internal.DefaultConfig()

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is employees.yaml in . or $HOME)")
	cmd.Flags().StringP(internal.KeyFile, "f", defaults.DataFile, "employee data file")
	cmd.Flags().String(internal.KeyLogLevel, defaults.LogLevel, "log level: debug, info, warn or error")
	cmd.Flags().Bool(internal.KeyNoColor, defaults.NoColor, "disable colored status messages")

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cmd.AddCommand(newVersionCmd())

	return cmd, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "employees %s\n", version)
		},
	}
}

// readConfigFile loads cfgFile, or searches for employees.* when it is empty.
// A missing config file is only an error when one was asked for.
func readConfigFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

func runConsole(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := internal.LoadConfig(v)
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	lockFile, err := lock.LockDataFile(cfg.DataFile)
	if err != nil {
		return err
	}
	defer lock.UnlockDataFile(lockFile)

	logger.Debug("session started", "file", cfg.DataFile, "version", version)

	store := core.NewFileStore(cfg.DataFile, core.WithLogger(logger))
	svc := core.NewService(store, logger)

	reader, closeReader := newLineReader(cmd)
	defer closeReader()

	opts := []console.Option{console.WithLogger(logger)}
	if cfg.NoColor {
		opts = append(opts, console.WithColor(false))
	}

	return console.New(svc, reader, cmd.OutOrStdout(), opts...).Run()
}

// newLineReader uses liner when attached to a terminal and plain line
// reading for pipes and redirected input.
func newLineReader(cmd *cobra.Command) (console.LineReader, func()) {
	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok && f == os.Stdin && isatty.IsTerminal(f.Fd()) {
		tr := console.NewTerminalReader()
		return tr, func() { tr.Close() }
	}

	return console.NewLineReader(in, cmd.OutOrStdout()), func() {}
}
