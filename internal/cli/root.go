// SPDX-License-Identifier: MIT

// Package cli is the lvpca command tree: cobra commands, viper configuration
// and a logrus logger around the pca, cluster and report packages.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by every command of one invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	log     *logrus.Logger
}

// NewRootCommand builds a fresh command tree. Each call has its own viper
// instance, so trees are independent of each other.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	root := &cobra.Command{
		Use:   "lvpca",
		Short: "lvpca - standardize a table of measurements and decompose it into principal components",
		Long: `lvpca z-scores the numeric columns of a table (sample standard deviation),
computes their principal components and reports eigenvalues, explained
variance, loadings and per-row scores.

Input is a CSV file with a header row (--file) or the embedded penguin
sample (--builtin penguins). Rows with a missing value in a selected column
are dropped before the analysis.

Configuration:
  Flags can also be set in $HOME/.lvpca.yaml (or --config) and through
  LVPCA_* environment variables, e.g. LVPCA_OUTPUT_FORMAT=json.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.lvpca.yaml)")
	pf.Bool("verbose", false, "enable debug logging")
	pf.String("log-format", "text", "log format: text or json")
	pf.StringP("file", "f", "", "CSV file with a header row")
	pf.String("builtin", "", "embedded dataset to use instead of --file (penguins)")
	pf.StringSlice("columns", nil, "numeric columns to analyse, in order (default: all numeric columns)")
	pf.String("group", "", "categorical column used as row label (e.g. species)")
	pf.StringP("format", "o", "table", "output format: table, json or yaml")

	_ = a.v.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = a.v.BindPFlag("log.format", pf.Lookup("log-format"))
	_ = a.v.BindPFlag("input.file", pf.Lookup("file"))
	_ = a.v.BindPFlag("input.builtin", pf.Lookup("builtin"))
	_ = a.v.BindPFlag("input.columns", pf.Lookup("columns"))
	_ = a.v.BindPFlag("input.group", pf.Lookup("group"))
	_ = a.v.BindPFlag("output.format", pf.Lookup("format"))

	root.AddCommand(a.newPCACommand(), a.newScoresCommand(), a.newCorrCommand())

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads the config file and environment, then configures the logger.
func (a *app) initConfig(stderr io.Writer) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".lvpca")
	}

	a.v.SetEnvPrefix("LVPCA")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	a.log.SetOutput(stderr)
	a.log.SetLevel(logrus.InfoLevel)
	if a.v.GetBool("verbose") {
		a.log.SetLevel(logrus.DebugLevel)
	}
	switch strings.ToLower(a.v.GetString("log.format")) {
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", a.v.GetString("log.format"))
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("using config file")
	}

	return nil
}
