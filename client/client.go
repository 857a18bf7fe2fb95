package client

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/tidepool-org/librelinkup/config"
	"github.com/tidepool-org/librelinkup/logger"
	"github.com/tidepool-org/librelinkup/models"
	"github.com/tidepool-org/librelinkup/region"
)

// DefaultVersion is the application version announced to the API.
const DefaultVersion = "4.12.0"

type Client struct {
	credentials models.LoginArgs
	region      region.Region
	baseURL     string
	version     string
	httpClient  Doer
	logger      *zap.SugaredLogger

	token         *oauth2.Token
	accountIDHash string
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		c.httpClient = doer
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBaseURL sends requests to baseURL instead of the region host.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithVersion(version string) Option {
	return func(c *Client) {
		c.version = version
	}
}

// New returns an unauthenticated client for the account in region r.
func New(email string, password string, r region.Region, options ...Option) (*Client, error) {
	c := &Client{
		credentials: models.LoginArgs{
			Email:    email,
			Password: password,
		},
		region:     r,
		baseURL:    r.BaseURL(),
		version:    DefaultVersion,
		httpClient: http.DefaultClient,
	}
	for _, option := range options {
		option(c)
	}

	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: %q", region.ErrUnknownRegion, r)
	}
	if c.logger == nil {
		c.logger = logger.NewDefaultLogger()
	}

	return c, nil
}

func NewFromConfig(cfg *config.Config, logger *zap.SugaredLogger) (*Client, error) {
	r, err := region.Parse(cfg.Region)
	if err != nil {
		return nil, err
	}

	options := []Option{
		WithHTTPClient(&http.Client{Timeout: cfg.HttpTimeout}),
		WithLogger(logger),
	}
	if cfg.BaseURL != "" {
		options = append(options, WithBaseURL(cfg.BaseURL))
	}
	if cfg.ClientVersion != "" {
		options = append(options, WithVersion(cfg.ClientVersion))
	}

	return New(cfg.Email, cfg.Password, r, options...)
}

func (c *Client) Region() region.Region {
	return c.region
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the session token, or an empty string before authentication.
func (c *Client) Token() string {
	if c.token == nil {
		return ""
	}
	return c.token.AccessToken
}

// TokenExpiry returns the expiry advertised by the auth ticket. It is zero when unknown.
func (c *Client) TokenExpiry() time.Time {
	if c.token == nil {
		return time.Time{}
	}
	return c.token.Expiry
}

func (c *Client) AccountIDHash() string {
	return c.accountIDHash
}

func (c *Client) IsAuthenticated() bool {
	return c.Token() != ""
}
