package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MonitorMetrics holds the Prometheus collectors for link statistics
// and hop progress.
type MonitorMetrics struct {
	channelHops     prometheus.Counter
	currentChannel  prometheus.Gauge
	rxCRCErrors     prometheus.Counter
	rxPHYErrors     prometheus.Counter
	vcoCalibrations prometheus.Counter
	rfkillAsserted  prometheus.Gauge
}

func NewMonitorMetrics() *MonitorMetrics {
	return &MonitorMetrics{
		channelHops: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rt2800_channel_hops_total",
			Help: "Completed channel changes",
		}),
		currentChannel: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "rt2800_current_channel",
			Help: "Channel the radio is currently tuned to",
		}),
		rxCRCErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rt2800_rx_crc_errors_total",
			Help: "Frames received with bad FCS",
		}),
		rxPHYErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rt2800_rx_phy_errors_total",
			Help: "PHY errors on the receive path",
		}),
		vcoCalibrations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rt2800_vco_calibrations_total",
			Help: "Periodic VCO recalibrations performed",
		}),
		rfkillAsserted: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "rt2800_rfkill_asserted",
			Help: "1 while the hardware kill switch is asserted",
		}),
	}
}

// Serve exposes /metrics on addr. Blocks; run in a goroutine.
func (m *MonitorMetrics) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
