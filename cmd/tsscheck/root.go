package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "tsscheck"

// Configuration keys.
const (
	keyTheme        = "theme"
	keyTraceAdapter = "tracing.adapter"
	keyTraceRoot    = "tracelevel.root"
	traceLevelKey   = "tracelevel"
)

func init() {
	rootCmd.PersistentFlags().String("config", "", "Read configuration from this file")
	rootCmd.PersistentFlags().StringP("theme", "t", "", "Name of the base theme")
	lo.Must0(viper.BindPFlag(keyTheme, rootCmd.PersistentFlags().Lookup("theme")))
	rootCmd.PersistentFlags().String("trace", "", "Trace level of the root tracer (Debug, Info, Error)")
	lo.Must0(viper.BindPFlag(keyTraceRoot, rootCmd.PersistentFlags().Lookup("trace")))

	rootCmd.AddCommand(lintCmd, resolveCmd, themesCmd)
}

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Check tss stylesheets and resolve styles for syntax trees",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(lo.Must(cmd.Flags().GetString("config")))
	},
}

// Execute runs the root command and exits with a non-zero code on error.
func Execute() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetOutput(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		logrus.WithField("cmd", appName).Error(err)
		os.Exit(1)
	}
}

// setup loads the configuration and installs the tracers.
func setup(configFile string) error {
	conf := viperadapter.New(appName)
	conf.InitDefaults()
	viper.SetDefault(keyTraceAdapter, "logrus")
	viper.SetDefault(keyTheme, "")
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}
	} else {
		conf.InitConfigPath()
	}
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, traceLevelKey, trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().P("adapter", conf.GetString(keyTraceAdapter)).Debugf("tracing configured")
	return nil
}

func tracer() tracing.Trace {
	return tracing.Select("tss.check")
}
