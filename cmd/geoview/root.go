package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/geoview"
)

type rootCommandParams struct {
	style    string
	width    int
	border   string
	logLevel string
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	params := rootCommandParams{}
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cmd := &cobra.Command{
		Use:   "geoview [file]",
		Short: "Print a country record as text",
		Long: `Print a country record as text.

The 'geoview' command reads a record in YAML or JSON and prints the country,
its languages, currency rates, weather and news. If no file is given, or the
file is '-', the record is read from stdin.

The '--style' option selects the output: 'bordered' draws a table of fixed
width, 'flat' prints labeled lines, 'json' and 'yaml' print the formatted
fields as a document.

Every flag can also be set through an environment variable named after it,
for example GEOVIEW_STYLE or GEOVIEW_LOG_LEVEL.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkEnvironmentVariables(cmd); err != nil {
				return err
			}
			level, err := logrus.ParseLevel(params.logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if err := render(params, args, stdin, stdout, logger); err != nil {
				logger.WithError(err).Error("Failed to render record.")
				return err
			}
			return nil
		},
	}

	styles := make([]string, 0, len(geoview.Styles()))
	for _, s := range geoview.Styles() {
		styles = append(styles, s.String())
	}
	cmd.Flags().StringVarP(&params.style, "style", "s", geoview.Bordered.String(), "output style: "+strings.Join(styles, ", "))
	cmd.Flags().IntVarP(&params.width, "width", "w", geoview.DefaultWidth, "table width for the bordered style")
	cmd.Flags().StringVar(&params.border, "border", "double", "table border: double, rounded, heavy, ascii")
	cmd.Flags().StringVar(&params.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	return cmd
}

func render(params rootCommandParams, args []string, stdin io.Reader, stdout io.Writer, logger logrus.FieldLogger) error {
	style, err := geoview.ParseStyle(params.style)
	if err != nil {
		return err
	}
	border, err := geoview.ParseBorder(params.border)
	if err != nil {
		return err
	}

	rec, err := readRecord(args, stdin)
	if err != nil {
		return err
	}
	logger.WithField("country", rec.Location.Name).Debug("Read record.")

	return geoview.Write(stdout, rec,
		geoview.WithStyle(style),
		geoview.WithWidth(params.width),
		geoview.WithBorder(border),
		geoview.WithLogger(logger),
	)
}

func readRecord(args []string, stdin io.Reader) (geoview.Record, error) {
	if len(args) == 0 || args[0] == "-" {
		return geoview.Decode(stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return geoview.Record{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return geoview.Decode(f)
}
