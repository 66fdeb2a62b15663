package aaa

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"
	"layeh.com/radius"
	"layeh.com/radius/rfc2865"

	"github.com/fiberops/subcore/internal/domain/setting"
)

// disconnect sends an RFC 5176 Disconnect-Request for username to the NAS.
// ACK is success; NAK and timeouts are failures.
func (c *Client) disconnect(ctx context.Context, settings setting.AAASettings, username string) error {
	packet := radius.New(radius.CodeDisconnectRequest, []byte(settings.RadiusSecret))
	if err := rfc2865.UserName_SetString(packet, username); err != nil {
		return fmt.Errorf("failed to build disconnect request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, settings.Timeout())
	defer cancel()

	result, err := c.breaker("radius://" + settings.RadiusNASAddr).Execute(func() (any, error) {
		resp, err := radius.Exchange(ctx, packet, settings.RadiusNASAddr)
		if err != nil {
			return nil, &ConnectionError{Cause: err}
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return ErrCircuitOpen
		}
		c.logger.Warnw("radius disconnect failed", "user", username, "nas", settings.RadiusNASAddr, "error", err)
		return err
	}

	resp := result.(*radius.Packet)
	if resp.Code != radius.CodeDisconnectACK {
		c.logger.Warnw("radius disconnect rejected", "user", username, "code", resp.Code.String())
		return &DisconnectRejectedError{Username: username}
	}

	c.logger.Debugw("radius disconnect acknowledged", "user", username)
	return nil
}
