// Package cli exposes read-only reports over the stored collections.
// Registration and the interactive menu live elsewhere.
package cli

import (
	"fmt"
	"os"

	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"utms/internal/config"
	"utms/internal/logger"
)

const (
	formatText    = "text"
	formatYAML    = "yaml"
	formatGeoJSON = "geojson"
)

type app struct {
	cfg      config.Config
	debug    bool
	log      *logrus.Logger
	closeLog func() error
}

func Execute() {
	cmd := NewRootCmd(config.Load())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd(cfg config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	cmd := &cobra.Command{
		Use:          "utms",
		Short:        "University transport management reports",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			a.log, a.closeLog = logger.Setup(a.cfg.Log, a.debug)
			a.log.WithField("data_dir", a.cfg.DataDir).Debug("utms started")
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.closeLog == nil {
				return nil
			}
			return a.closeLog()
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfg.DataDir, "data-dir", cfg.DataDir, "directory holding the collection files")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "log at debug level and echo logs to stderr")

	cmd.AddCommand(
		newUsersCmd(a),
		newVehiclesCmd(a),
		newRequestsCmd(a),
	)
	return cmd
}

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (want one of %v)", format, allowed)
}
