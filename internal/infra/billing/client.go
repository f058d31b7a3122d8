// Package billing asks the plan service whether a tenant may use a feature.
package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ shared.EntitlementChecker = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// CheckFeature fails closed: an unreachable billing service disables the feature.
func (c *Client) CheckFeature(ctx context.Context, tenantID uuid.UUID, feature shared.Feature) error {
	return c.check(ctx, tenantID, "features", feature, shared.ErrFeatureDisabled)
}

func (c *Client) CheckUsage(ctx context.Context, tenantID uuid.UUID, feature shared.Feature) error {
	return c.check(ctx, tenantID, "usage", feature, shared.ErrPlanLimitExceeded)
}

func (c *Client) check(ctx context.Context, tenantID uuid.UUID, kind string, feature shared.Feature, refusal error) error {
	endpoint := fmt.Sprintf("%s/tenants/%s/%s/%s", c.baseURL, tenantID, kind, url.PathEscape(string(feature)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "build billing request"), refusal)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "billing service unreachable",
			"tenant_id", tenantID.String(), "feature", string(feature), "error", err.Error())
		return errs.Mark(errs.Wrapf(err, "billing %s check for %s", kind, feature), refusal)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var d decision
		if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&d); err != nil {
			return errs.Mark(errs.Wrap(err, "decode billing response"), refusal)
		}
		if !d.Allowed {
			return errs.Mark(errs.Newf("%s %s refused: %s", kind, feature, d.Reason), refusal)
		}
		return nil
	case http.StatusForbidden:
		return errs.Mark(errs.Newf("feature %s disabled for tenant", feature), shared.ErrFeatureDisabled)
	case http.StatusPaymentRequired, http.StatusTooManyRequests:
		return errs.Mark(errs.Newf("usage limit reached for %s", feature), shared.ErrPlanLimitExceeded)
	default:
		return errs.Mark(errs.Newf("billing service returned status %d", resp.StatusCode), refusal)
	}
}

// AllowAll grants everything. Used when no billing service is configured.
type AllowAll struct{}

func (AllowAll) CheckFeature(context.Context, uuid.UUID, shared.Feature) error { return nil }

func (AllowAll) CheckUsage(context.Context, uuid.UUID, shared.Feature) error { return nil }
