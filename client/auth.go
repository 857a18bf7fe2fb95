package client

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	errs "github.com/tidepool-org/librelinkup/errors"
	"github.com/tidepool-org/librelinkup/models"
	"github.com/tidepool-org/librelinkup/region"
)

// Authenticate logs in and stores the session used by all data operations. A failed
// attempt leaves any previous session in place.
func (c *Client) Authenticate(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodPost, loginPath, c.credentials)
	if err != nil {
		return err
	}

	res, body, err := c.do(req)
	if err != nil {
		return err
	}
	if !isSuccess(res.StatusCode) {
		return errs.NewHttpError(res.StatusCode, body)
	}

	probe, _ := models.ProbeLogin(body)
	if probe.Data.Redirect {
		r, err := region.Parse(probe.Data.Region)
		if err != nil {
			return fmt.Errorf("unable to follow login redirect: %w", err)
		}
		return &errs.RedirectError{Region: r}
	}

	switch probe.Data.Step.Type {
	case models.StepTermsOfUse:
		return errs.ErrTermsOfUse
	case models.StepPrivacyPolicy:
		return errs.ErrPrivacyPolicy
	case models.StepVerifyEmail:
		return errs.ErrEmailVerification
	}

	login := models.LoginResponse{}
	if err := models.Decode(body, &login); err != nil {
		if probe.Error.Message != "" {
			return fmt.Errorf("%w: invalid login credentials (%s): %w", errs.ErrAuthentication, probe.Error.Message, err)
		}
		return fmt.Errorf("%w: invalid login credentials: %w", errs.ErrAuthentication, err)
	}

	c.setSession(login.Data)
	return nil
}

func (c *Client) setSession(data models.LoginData) {
	token := &oauth2.Token{
		AccessToken: data.AuthTicket.Token,
		TokenType:   "Bearer",
	}
	if data.AuthTicket.Expires > 0 {
		token.Expiry = time.Unix(data.AuthTicket.Expires, 0)
	}

	c.token = token
	c.accountIDHash = HashAccountID(data.User.ID)
}

func (c *Client) requireAuthentication() error {
	if !c.IsAuthenticated() {
		return fmt.Errorf("%w: not authenticated", errs.ErrAuthentication)
	}
	return nil
}

// HashAccountID returns the value of the account-id header for a user id.
func HashAccountID(userID string) string {
	sum := sha256.Sum256([]byte(userID))
	return hex.EncodeToString(sum[:])
}
