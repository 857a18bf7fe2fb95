package command

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tidepool-org/librelinkup/client"
	"github.com/tidepool-org/librelinkup/config"
	errs "github.com/tidepool-org/librelinkup/errors"
)

// authenticate logs in, following a single region redirect by building a client for the
// region the account belongs to.
func authenticate(ctx context.Context, c *client.Client, cfg *config.Config, logger *zap.SugaredLogger) (*client.Client, error) {
	err := c.Authenticate(ctx)
	if err == nil {
		return c, nil
	}

	var redirect *errs.RedirectError
	if !errors.As(err, &redirect) || cfg.BaseURL != "" {
		return nil, err
	}

	logger.Infow("following login redirect", "from", c.Region(), "to", redirect.Region)

	redirected := *cfg
	redirected.Region = redirect.Region.String()
	c, err = client.NewFromConfig(&redirected, logger)
	if err != nil {
		return nil, err
	}
	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}
	return c, nil
}
