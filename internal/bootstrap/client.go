package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"runtime"
	"strings"

	"github.com/barakhava1/CashoryLoanTracker/internal/config"
	customError "github.com/barakhava1/CashoryLoanTracker/pkg/errors"
	"github.com/barakhava1/CashoryLoanTracker/pkg/utils"
)

// Payload is a well-formed bootstrap answer: an opaque token and the remote
// destination to hand the user to.
type Payload struct {
	Token string
	Link  string
}

// Client performs the one-shot bootstrap request. A nil payload with a nil
// error means the server answered but offered no bootstrap.
type Client interface {
	FetchInitialData(ctx context.Context) (*Payload, error)
}

type httpClient struct {
	origin     string
	partnerKey string
	client     *http.Client
}

// NewHTTPClient builds the wire client. The underlying transport keeps no
// connection or cache state between attempts, so every request gets a fresh
// answer.
func NewHTTPClient(cfg *config.Config) Client {
	return &httpClient{
		origin:     cfg.Bootstrap.Origin,
		partnerKey: cfg.Bootstrap.PartnerKey,
		client: &http.Client{
			Timeout: cfg.Bootstrap.TimeoutDuration(),
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
		},
	}
}

// FetchInitialData issues the bootstrap request. The expected success body is
// plain text "token#destination"; any other shape means no bootstrap. All
// transport and status failures collapse into ErrBootstrapUnavailable.
func (c *httpClient) FetchInitialData(ctx context.Context) (*Payload, error) {
	endpoint, err := url.Parse(c.origin)
	if err != nil {
		return nil, customError.WrapBootstrapUnavailable(err)
	}

	locale := os.Getenv("LANG")
	params := url.Values{}
	params.Set("p", c.partnerKey)
	params.Set("os", runtime.GOOS)
	params.Set("lng", utils.LanguageCode(locale))
	params.Set("devicemodel", utils.NormalizeDeviceModel(runtime.GOARCH))
	params.Set("country", utils.CountryCode(locale))
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, customError.WrapBootstrapUnavailable(err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, customError.WrapBootstrapUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, customError.WrapBootstrapUnavailable(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, customError.WrapBootstrapUnavailable(err)
	}

	return ParsePayload(string(body)), nil
}

// ParsePayload splits a response body on the '#' delimiter. Bodies without
// the delimiter, or with fewer than two parts, carry no bootstrap.
func ParsePayload(body string) *Payload {
	if !strings.Contains(body, "#") {
		return nil
	}

	parts := strings.Split(body, "#")
	if len(parts) < 2 {
		return nil
	}

	return &Payload{Token: parts[0], Link: parts[1]}
}
