package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/librelinkup/client"
	"github.com/tidepool-org/librelinkup/config"
	"github.com/tidepool-org/librelinkup/models"
)

var graphParams = struct {
	PatientId string
	Xlsx      string
}{}

var graphCmd = &cobra.Command{
	Use:   "graph <patient id>",
	Args:  cobra.ExactArgs(1),
	Short: "Print recent readings",
	Long:  "The graph command prints roughly the last twelve hours of readings of a patient",
	RunE: func(cmd *cobra.Command, args []string) error {
		graphParams.PatientId = args[0]
		return Run(graph)
	},
}

func graph(c *client.Client, cfg *config.Config, logger *zap.SugaredLogger) error {
	c, err := authenticate(context.TODO(), c, cfg, logger)
	if err != nil {
		return err
	}

	measurements, err := c.Graph(context.TODO(), graphParams.PatientId)
	if err != nil {
		return err
	}

	return printMeasurements("Graph of "+graphParams.PatientId, measurements, graphParams.Xlsx)
}

func printMeasurements(title string, measurements []models.GlucoseMeasurement, xlsxPath string) error {
	if xlsxPath != "" {
		return exportMeasurements(title, measurements, xlsxPath)
	}

	for _, measurement := range measurements {
		fmt.Printf("%s\t%v mg/dL\n", measurement.Timestamp.Format("2006-01-02 15:04"), measurement.ValueInMgPerDl)
	}
	fmt.Printf("Found %v measurements\n", len(measurements))

	return nil
}

func init() {
	graphCmd.Flags().StringVar(&graphParams.Xlsx, "xlsx", "", "Write the readings to an xlsx workbook")
	rootCmd.AddCommand(graphCmd)
}
