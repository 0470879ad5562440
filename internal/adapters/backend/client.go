package backend

import (
	"errors"
	"net/http"
	"strings"

	"logistik-dashboard/internal/platform/logger"
	"logistik-dashboard/internal/platform/metrics"
)

// Client talks to the logistics backend over HTTP/JSON.
//
// Every call is a single attempt: failures are returned to the caller as
// *StatusError (server rejected the request) or a wrapped transport error.
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
	log     logger.ILogger
	metrics *metrics.Metrics
}

// NewClient builds a client for baseURL. m may be nil.
func NewClient(
	session *http.Client,
	baseURL string,
	log logger.ILogger,
	m *metrics.Metrics,
) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend base url is empty")
	}
	if session == nil {
		session = http.DefaultClient
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		session: session,
		baseURL: baseURL,
		log:     log,
		metrics: m,
	}, nil
}

func (c *Client) record(operation string, err error) {
	if c.metrics == nil {
		return
	}

	outcome := metrics.OutcomeSuccess
	var se *StatusError
	switch {
	case err == nil:
	case errors.As(err, &se):
		outcome = metrics.OutcomeRejected
	default:
		outcome = metrics.OutcomeNetwork
	}
	c.metrics.BackendRequests.WithLabelValues(operation, outcome).Inc()
}
