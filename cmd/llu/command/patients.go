package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/librelinkup/client"
	"github.com/tidepool-org/librelinkup/config"
)

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "List patients",
	Long:  "The patients command lists the patients sharing their data with the account",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listPatients) },
}

func listPatients(c *client.Client, cfg *config.Config, logger *zap.SugaredLogger) error {
	c, err := authenticate(context.TODO(), c, cfg, logger)
	if err != nil {
		return err
	}

	patients, err := c.GetPatients(context.TODO())
	if err != nil {
		return err
	}

	for _, patient := range patients {
		fmt.Println(patient.String())
	}
	fmt.Printf("Found %v patients\n", len(patients))

	return nil
}

func init() {
	rootCmd.AddCommand(patientsCmd)
}
