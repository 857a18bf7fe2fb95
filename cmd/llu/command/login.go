package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/librelinkup/client"
	"github.com/tidepool-org/librelinkup/config"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify LibreLinkUp credentials",
	Long:  "The login command authenticates with the configured credentials and prints the session details",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(login) },
}

func login(c *client.Client, cfg *config.Config, logger *zap.SugaredLogger) error {
	c, err := authenticate(context.TODO(), c, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Region: %s (%s)\n", c.Region(), c.BaseURL())
	fmt.Printf("Account: %s\n", c.AccountIDHash())
	if expiry := c.TokenExpiry(); !expiry.IsZero() {
		fmt.Printf("Session expires: %s\n", expiry.Format(time.RFC3339))
	}

	return nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
