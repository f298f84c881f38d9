package goAuthClient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MrEthical07/goAuthClient/password"
)

// Register creates a new account and adopts the returned session exactly
// like Login does. The request is validated locally first: field rules via
// struct tags, then the full password policy. A request that fails locally
// never reaches the network.
//
// Register may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	if c == nil {
		return nil, ErrClientNotReady
	}

	if err := c.validate.Struct(req); err != nil {
		c.metricInc(MetricRegisterRejectedLocally)
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(validationMessages(err), "; "))
	}
	if res := password.Validate(req.Password); !res.Valid {
		c.metricInc(MetricRegisterRejectedLocally)
		return nil, fmt.Errorf("%w: %s", ErrPasswordPolicy, strings.Join(res.Errors, "; "))
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp, false); err != nil {
		c.metricInc(MetricRegisterFailure)
		return nil, err
	}

	return c.adoptSession(ctx, resp, MetricRegisterSuccess, MetricRegisterFailure)
}
