package metrics

import (
	"errors"
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/tupyy/async-engine/pkg/scheduler"
)

// ExporterOptions controls collector configuration.
type ExporterOptions struct {
	StepDurationBuckets []float64
}

// Exporter adapts scheduler.Metrics to Prometheus collectors.
type Exporter struct {
	queueDepth         prom.Gauge
	workers            prom.Gauge
	independentThreads prom.Gauge
	tasksFinished      *prom.CounterVec
	stepDuration       *prom.HistogramVec
}

var _ scheduler.Metrics = (*Exporter)(nil)

// NewExporter creates and registers the scheduler collectors.
func NewExporter(namespace string, reg prom.Registerer, opts ExporterOptions) (*Exporter, error) {
	if namespace == "" {
		namespace = "async_engine"
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	buckets := opts.StepDurationBuckets
	if len(buckets) == 0 {
		buckets = prom.ExponentialBuckets(0.0005, 4, 10)
	}

	queueDepth := prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "ready_queue_depth",
		Help:      "Number of tasks waiting in the ready queue.",
	})
	workers := prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "pool_workers",
		Help:      "Number of pool workers.",
	})
	independent := prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "independent_threads",
		Help:      "Number of live independent task threads.",
	})
	finished := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_finished_total",
		Help:      "Total number of finished tasks by final state.",
	}, []string{"state"})
	stepDuration := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "step_duration_seconds",
		Help:      "Duration of a single step call in seconds.",
		Buckets:   buckets,
	}, []string{"priority"})

	var err error
	if queueDepth, err = registerCollector(reg, queueDepth); err != nil {
		return nil, err
	}
	if workers, err = registerCollector(reg, workers); err != nil {
		return nil, err
	}
	if independent, err = registerCollector(reg, independent); err != nil {
		return nil, err
	}
	if finished, err = registerCollector(reg, finished); err != nil {
		return nil, err
	}
	if stepDuration, err = registerCollector(reg, stepDuration); err != nil {
		return nil, err
	}

	return &Exporter{
		queueDepth:         queueDepth,
		workers:            workers,
		independentThreads: independent,
		tasksFinished:      finished,
		stepDuration:       stepDuration,
	}, nil
}

func (e *Exporter) RecordQueueDepth(depth int) {
	if e == nil {
		return
	}
	e.queueDepth.Set(float64(depth))
}

func (e *Exporter) RecordWorkers(n int) {
	if e == nil {
		return
	}
	e.workers.Set(float64(n))
}

func (e *Exporter) RecordIndependentThreads(n int) {
	if e == nil {
		return
	}
	e.independentThreads.Set(float64(n))
}

func (e *Exporter) RecordTaskFinished(state scheduler.State) {
	if e == nil {
		return
	}
	e.tasksFinished.WithLabelValues(state.String()).Inc()
}

func (e *Exporter) RecordStepDuration(priority int, d time.Duration) {
	if e == nil {
		return
	}
	e.stepDuration.WithLabelValues(PriorityLabel(priority)).Observe(d.Seconds())
}

// PriorityLabel buckets task priorities into a small label set.
func PriorityLabel(priority int) string {
	switch {
	case priority == scheduler.PriorityMustRunNext:
		return "must_run_next"
	case priority < 0:
		return "urgent"
	case priority == 0:
		return "normal"
	default:
		return "background"
	}
}

func registerCollector[T prom.Collector](reg prom.Registerer, collector T) (T, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegisteredErr prom.AlreadyRegisteredError
	if errors.As(err, &alreadyRegisteredErr) {
		existing, ok := alreadyRegisteredErr.ExistingCollector.(T)
		if !ok {
			return collector, fmt.Errorf("collector type mismatch for %T", collector)
		}
		return existing, nil
	}

	return collector, err
}
