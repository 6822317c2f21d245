package internal

import (
	"fmt"
	"time"

	"github.com/cactus/go-statsd-client/v5/statsd"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/viper"
	"github.com/swell-scan/swell/internal/classify"
	"github.com/swell-scan/swell/internal/upload"
	"github.com/wal-g/tracelog"
)

type metrics struct {
	scannedFilesTotal  prometheus.Counter
	decisionsTotal     *prometheus.CounterVec
	uploadedFilesTotal prometheus.Counter
	knownFilesTotal    prometheus.Counter
	failedFilesTotal   prometheus.Counter
}

var (
	SwellMetricsPrefix = "swell_"

	SwellMetrics = metrics{
		scannedFilesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: SwellMetricsPrefix + "scanned_files_total",
				Help: "Number of files visited by the walker.",
			},
		),
		decisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: SwellMetricsPrefix + "classified_files_total",
				Help: "Number of files per classification decision.",
			},
			[]string{"decision"},
		),
		uploadedFilesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: SwellMetricsPrefix + "uploaded_files_total",
				Help: "Number of files transferred to intake.",
			},
		),
		knownFilesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: SwellMetricsPrefix + "known_files_total",
				Help: "Number of files intake did not ask for.",
			},
		),
		failedFilesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: SwellMetricsPrefix + "failed_files_total",
				Help: "Number of files whose upload failed.",
			},
		),
	}
)

func init() {
	// unregister prometheus collectors
	// https://github.com/prometheus/client_golang/blob/8dfa334295e85f9b1e48ce862fae5f337faa6d2f/prometheus/registry.go#L62-L63
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prometheus.Unregister(collectors.NewGoCollector())

	prometheus.MustRegister(SwellMetrics.scannedFilesTotal)
	prometheus.MustRegister(SwellMetrics.decisionsTotal)
	prometheus.MustRegister(SwellMetrics.uploadedFilesTotal)
	prometheus.MustRegister(SwellMetrics.knownFilesTotal)
	prometheus.MustRegister(SwellMetrics.failedFilesTotal)

	for _, label := range decisionLabels() {
		SwellMetrics.decisionsTotal.WithLabelValues(label)
	}
}

func (m metrics) observe(outcome upload.Outcome) {
	m.scannedFilesTotal.Inc()
	m.decisionsTotal.WithLabelValues(outcome.Decision.String()).Inc()
	switch outcome.Status {
	case upload.StatusUploaded:
		m.uploadedFilesTotal.Inc()
	case upload.StatusKnown:
		m.knownFilesTotal.Inc()
	case upload.StatusFailed:
		m.failedFilesTotal.Inc()
	}
}

// decisionLabels lists every label value so empty series are still exported.
func decisionLabels() []string {
	var labels []string
	for _, decision := range classify.Decisions() {
		labels = append(labels, decision.String())
	}
	return labels
}

func PushMetrics() {
	address := viper.GetString(StatsdAddressSetting)
	if address == "" {
		return
	}

	err := pushMetrics(address)
	if err != nil {
		tracelog.WarningLogger.Printf("Pushing metrics failed: %v", err)
	}
}

func pushMetrics(address string) error {
	config := &statsd.ClientConfig{
		Address:       address,
		UseBuffered:   true,
		FlushInterval: 10 * time.Second,
		TagFormat:     statsd.InfixComma,
	}

	client, err := statsd.NewClientWithConfig(config)
	if err != nil {
		return err
	}
	defer client.Close()

	tracelog.DebugLogger.Printf("Sending metrics to statsd")

	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if err := writeMetricFamilyToStatsd(client, mf); err != nil {
			return err
		}
	}

	return nil
}

func writeMetricFamilyToStatsd(client statsd.Statter, in *dto.MetricFamily) error {
	name := in.GetName()

	for _, metric := range in.Metric {
		var tags []statsd.Tag
		for _, lp := range metric.Label {
			tags = append(tags, statsd.Tag{lp.GetName(), lp.GetValue()})
		}

		switch in.GetType() {
		case dto.MetricType_COUNTER:
			if metric.Counter == nil {
				return fmt.Errorf("expected counter in metric %s %s", name, metric)
			}
			if err := client.Inc(name, int64(metric.Counter.GetValue()), 1.0, tags...); err != nil {
				return err
			}
		case dto.MetricType_GAUGE:
			if metric.Gauge == nil {
				return fmt.Errorf("expected gauge in metric %s %s", name, metric)
			}
			if err := client.Gauge(name, int64(metric.Gauge.GetValue()), 1.0, tags...); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unexpected type in metric %s %s", name, metric)
		}
	}

	return nil
}
