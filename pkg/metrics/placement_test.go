package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestPlacementMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPlacementMetrics(reg)
	metrics.ObserveDuration("item", 250*time.Millisecond)
	metrics.IncOutcome("item", "placed")
	metrics.IncOutcome("item", "placed")
	metrics.IncOutcome("armor_set", "")
	metrics.IncInFlightRejection()

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "placement_outcomes_total", "reason", "placed"); err != nil {
		t.Fatalf("fetch placed: %v", err)
	} else if got != 2 {
		t.Fatalf("expected placed=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "placement_outcomes_total", "reason", "unknown"); err != nil {
		t.Fatalf("fetch unknown: %v", err)
	} else if got != 1 {
		t.Fatalf("expected empty reason to be normalized, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "placement_duration_seconds", "kind", "item"); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}

	mf := findMetricFamily(mfs, "placement_inflight_rejections_total")
	if mf == nil || mf.GetMetric()[0].GetCounter().GetValue() != 1 {
		t.Fatalf("expected one in-flight rejection")
	}
}

func TestPlacementMetricsNilSafe(t *testing.T) {
	var metrics *PlacementMetrics
	metrics.ObserveDuration("item", time.Second)
	metrics.IncOutcome("item", "placed")
	metrics.IncInFlightRejection()

	NewPlacementMetrics(nil).IncOutcome("item", "placed")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
