package untappdweb

import (
	"fmt"
	"net/url"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

const (
	IntegrationName = "untappd_web"
	defaultBaseURL  = "https://untappd.com"
	userAgent       = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"
)

type UntappdWebIntegration struct {
	logger  *zap.Logger
	baseURL string
}

type Option func(*UntappdWebIntegration)

// WithBaseURL points the integration at another host, a local copy of the site
// for instance.
func WithBaseURL(baseURL string) Option {
	return func(u *UntappdWebIntegration) {
		u.baseURL = baseURL
	}
}

func NewUntappdWebIntegration(logger *zap.Logger, options ...Option) *UntappdWebIntegration {
	integration := &UntappdWebIntegration{logger: logger, baseURL: defaultBaseURL}

	for _, option := range options {
		option(integration)
	}

	return integration
}

// newCollector returns a collector restricted to the configured host and the
// address of its search page.
func (u *UntappdWebIntegration) newCollector() (*colly.Collector, *url.URL, error) {
	base, err := url.Parse(u.baseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid base url %q: %w", u.baseURL, err)
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(base.Hostname()),
		colly.UserAgent(userAgent),
	)

	return collector, base.JoinPath("search"), nil
}
