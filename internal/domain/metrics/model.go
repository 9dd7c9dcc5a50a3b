package metrics

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// MetricType lista los tipos que la página de perfil ofrece; el servicio acepta otros.
type MetricType string

const (
	MetricWeight        MetricType = "weight"
	MetricHeartRate     MetricType = "heart_rate"
	MetricBloodPressure MetricType = "blood_pressure"
	MetricBloodGlucose  MetricType = "blood_glucose"
	MetricSteps         MetricType = "steps"
	MetricSleep         MetricType = "sleep"
)

var ErrInvalidPayload = errors.New("invalid payload")

type HealthMetric struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId"`
	MetricType     MetricType     `json:"metricType"`
	Value          float64        `json:"value"`
	Unit           string         `json:"unit"`
	Timestamp      string         `json:"timestamp"`
	Source         string         `json:"source,omitempty"`
	AdditionalData map[string]any `json:"additionalData,omitempty"`
	CreatedAt      string         `json:"createdAt,omitempty"`
	UpdatedAt      string         `json:"updatedAt,omitempty"`
}

func (m HealthMetric) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("%w: health metric id is required", ErrInvalidPayload)
	}
	if strings.TrimSpace(string(m.MetricType)) == "" {
		return fmt.Errorf("%w: metricType is required", ErrInvalidPayload)
	}
	return nil
}

type HealthMetricInput struct {
	MetricType     MetricType     `json:"metricType"`
	Value          float64        `json:"value"`
	Unit           string         `json:"unit"`
	Timestamp      string         `json:"timestamp,omitempty"`
	Source         string         `json:"source,omitempty"`
	AdditionalData map[string]any `json:"additionalData,omitempty"`
}

func (in HealthMetricInput) Validate() error {
	if strings.TrimSpace(string(in.MetricType)) == "" {
		return errors.New("Please select a metric type")
	}
	if strings.TrimSpace(in.Unit) == "" {
		return errors.New("Unit is required")
	}
	return nil
}

// Filter son los filtros opcionales de GET /health-metrics.
type Filter struct {
	MetricType MetricType
	StartDate  string
	EndDate    string
}

// Query solo incluye los filtros presentes.
func (f Filter) Query() url.Values {
	q := url.Values{}
	if f.MetricType != "" {
		q.Set("metricType", string(f.MetricType))
	}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	return q
}
