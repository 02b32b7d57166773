// Package metrics exposes engine activity to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/logging"
	"github.com/dmitrijs2005/stakemarket/internal/server/engine"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stakemarket"

// gaugeTimeout bounds the snapshot reads behind each scrape.
const gaugeTimeout = 2 * time.Second

// StateSource provides the values behind the state gauges.
type StateSource interface {
	ListAll(ctx context.Context) ([]models.ListingID, error)
	VaultBalance(ctx context.Context) (models.Amount, error)
	TotalSupply(ctx context.Context) (models.Amount, error)
	Accounts(ctx context.Context) ([]models.Account, error)
}

// Metrics implements engine.Observer.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	latency    *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Mutating engine operations by kind and outcome.",
		}, []string{"op", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Time spent in the sequencer per operation.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"op"}),
	}
	reg.MustRegister(m.operations, m.latency)
	return m
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case engine.IsRejection(err):
		return "rejected"
	default:
		return "error"
	}
}

func (m *Metrics) OperationCompleted(op string, err error, elapsed time.Duration) {
	m.operations.WithLabelValues(op, outcome(err)).Inc()
	m.latency.WithLabelValues(op).Observe(elapsed.Seconds())
}

// RegisterState adds gauges that read src on every scrape.
func (m *Metrics) RegisterState(src StateSource) {
	read := func(f func(ctx context.Context) (float64, error)) func() float64 {
		return func() float64 {
			ctx, cancel := context.WithTimeout(context.Background(), gaugeTimeout)
			defer cancel()
			v, err := f(ctx)
			if err != nil {
				return -1
			}
			return v
		}
	}

	m.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "listings",
			Help:      "Listings ever published.",
		}, read(func(ctx context.Context) (float64, error) {
			ids, err := src.ListAll(ctx)
			return float64(len(ids)), err
		})),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vault_balance",
			Help:      "Stake held in escrow, base units.",
		}, read(func(ctx context.Context) (float64, error) {
			v, err := src.VaultBalance(ctx)
			return float64(v), err
		})),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_supply",
			Help:      "Sum of all balances, base units.",
		}, read(func(ctx context.Context) (float64, error) {
			v, err := src.TotalSupply(ctx)
			return float64(v), err
		})),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "accounts",
			Help:      "Ledger accounts that ever held a balance.",
		}, read(func(ctx context.Context) (float64, error) {
			accounts, err := src.Accounts(ctx)
			return float64(len(accounts)), err
		})),
	)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string, logger logging.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	log := logger.With("module", "metrics")

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info(ctx, "Starting metrics server", "address", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
