// Package client talks to the LibreLinkUp follower API.
//
// A Client is bound to one account and one region. Authenticate must succeed before any
// data operation; a login answered with a redirect returns *errors.RedirectError and the
// caller is expected to build a new Client for the advertised region:
//
//	c, err := client.New(email, password, region.US)
//	if err != nil {
//		return err
//	}
//	if err := c.Authenticate(ctx); err != nil {
//		var redirect *errors.RedirectError
//		if !errors.As(err, &redirect) {
//			return err
//		}
//		// build a client for redirect.Region and authenticate again
//	}
//	patients, err := c.GetPatients(ctx)
//
// A Client keeps its session in memory without synchronisation. Use one Client per
// goroutine or guard it externally.
package client
