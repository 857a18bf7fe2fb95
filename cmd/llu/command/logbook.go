package command

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/librelinkup/client"
	"github.com/tidepool-org/librelinkup/config"
	"github.com/tidepool-org/librelinkup/models"
	"github.com/tidepool-org/librelinkup/report"
)

var logbookParams = struct {
	PatientId string
	Xlsx      string
}{}

var logbookCmd = &cobra.Command{
	Use:   "logbook <patient id>",
	Args:  cobra.ExactArgs(1),
	Short: "Print logbook entries",
	Long:  "The logbook command prints roughly two weeks of logbook entries of a patient",
	RunE: func(cmd *cobra.Command, args []string) error {
		logbookParams.PatientId = args[0]
		return Run(logbook)
	},
}

func logbook(c *client.Client, cfg *config.Config, logger *zap.SugaredLogger) error {
	c, err := authenticate(context.TODO(), c, cfg, logger)
	if err != nil {
		return err
	}

	entries, err := c.Logbook(context.TODO(), logbookParams.PatientId)
	if err != nil {
		return err
	}

	return printMeasurements("Logbook of "+logbookParams.PatientId, entries, logbookParams.Xlsx)
}

func exportMeasurements(title string, measurements []models.GlucoseMeasurement, path string) error {
	return report.NewMeasurementsReport(title, measurements).Save(path)
}

func init() {
	logbookCmd.Flags().StringVar(&logbookParams.Xlsx, "xlsx", "", "Write the entries to an xlsx workbook")
	rootCmd.AddCommand(logbookCmd)
}
