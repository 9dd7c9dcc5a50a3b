package medtapapi

import (
	"context"
	"net/http"

	"medtap-client/internal/domain/bodyscans"
	"medtap-client/internal/domain/metrics"
	"medtap-client/internal/platform/httpclient"
)

const (
	bodyScansPath     = "/body-scans"
	healthMetricsPath = "/health-metrics"
)

func (c *Client) ListBodyScans(ctx context.Context) ([]bodyscans.BodyScan, error) {
	var out []bodyscans.BodyScan
	if err := c.do(ctx, httpclient.Request{Method: http.MethodGet, Path: bodyScansPath}, &out); err != nil {
		return nil, err
	}
	if err := checkAll(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBodyScan(ctx context.Context, id string) (bodyscans.BodyScan, error) {
	return getOne[bodyscans.BodyScan](ctx, c, bodyScansPath, id)
}

func (c *Client) CreateBodyScan(ctx context.Context, in bodyscans.BodyScanInput) (bodyscans.BodyScan, error) {
	return sendOne[bodyscans.BodyScan](ctx, c, http.MethodPost, bodyScansPath, in)
}

func (c *Client) UpdateBodyScan(ctx context.Context, id string, in bodyscans.BodyScanInput) (bodyscans.BodyScan, error) {
	p, err := itemPath(bodyScansPath, id)
	if err != nil {
		return bodyscans.BodyScan{}, err
	}
	return sendOne[bodyscans.BodyScan](ctx, c, http.MethodPut, p, in)
}

func (c *Client) DeleteBodyScan(ctx context.Context, id string) error {
	return c.deleteOne(ctx, bodyScansPath, id)
}

// ListHealthMetrics manda solo los filtros presentes como query params.
func (c *Client) ListHealthMetrics(ctx context.Context, f metrics.Filter) ([]metrics.HealthMetric, error) {
	var out []metrics.HealthMetric
	if err := c.do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   healthMetricsPath,
		Query:  f.Query(),
	}, &out); err != nil {
		return nil, err
	}
	if err := checkAll(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RecordHealthMetric(ctx context.Context, in metrics.HealthMetricInput) (metrics.HealthMetric, error) {
	return sendOne[metrics.HealthMetric](ctx, c, http.MethodPost, healthMetricsPath, in)
}
