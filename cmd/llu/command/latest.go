package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/librelinkup/client"
	"github.com/tidepool-org/librelinkup/config"
	"github.com/tidepool-org/librelinkup/pointer"
)

var latestParams = struct {
	PatientId string
}{}

var latestCmd = &cobra.Command{
	Use:   "latest <patient id>",
	Args:  cobra.ExactArgs(1),
	Short: "Print the latest reading",
	Long:  "The latest command prints the most recent reading of a patient with its trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		latestParams.PatientId = args[0]
		return Run(latest)
	},
}

func latest(c *client.Client, cfg *config.Config, logger *zap.SugaredLogger) error {
	c, err := authenticate(context.TODO(), c, cfg, logger)
	if err != nil {
		return err
	}

	measurement, err := c.Latest(context.TODO(), latestParams.PatientId)
	if err != nil {
		return err
	}

	fmt.Printf("%s\t%v mg/dL %s %s\n",
		measurement.Timestamp.Format("2006-01-02 15:04"),
		measurement.ValueInMgPerDl,
		measurement.TrendArrow.Arrow(),
		pointer.ToString(measurement.TrendMessage),
	)

	return nil
}

func init() {
	rootCmd.AddCommand(latestCmd)
}
