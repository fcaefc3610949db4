package compute

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/grafana/colexpr/pkg/columnar"
	"github.com/grafana/colexpr/pkg/memory"
)

// Metrics is a container of metrics for evaluated expressions.
type Metrics struct {
	evaluationsTotal *prometheus.CounterVec
	failuresTotal    *prometheus.CounterVec
	rowsTotal        *prometheus.CounterVec
	nullRowsTotal    *prometheus.CounterVec

	evalSeconds *prometheus.HistogramVec
}

// NewMetrics returns Metrics registered to reg. reg may be nil, in which case
// the metrics are not registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		evaluationsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "colexpr_expression_evaluations_total",
			Help: "Total number of expression evaluations by expression",
		}, []string{"expression"}),
		failuresTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "colexpr_expression_failures_total",
			Help: "Total number of expression evaluations that returned an error by expression",
		}, []string{"expression"}),
		rowsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "colexpr_expression_rows_total",
			Help: "Total number of rows produced by expression",
		}, []string{"expression"}),
		nullRowsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "colexpr_expression_null_rows_total",
			Help: "Total number of null rows produced by expression",
		}, []string{"expression"}),

		evalSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name: "colexpr_expression_eval_seconds",
			Help: "Number of seconds an expression took to evaluate",

			NativeHistogramBucketFactor:     1.1,
			NativeHistogramMaxBucketNumber:  100,
			NativeHistogramMinResetDuration: time.Hour,
		}, []string{"expression"}),
	}
}

// Instrument returns an [Expression] evaluating expr and reporting every
// evaluation to m.
func Instrument(expr Expression, m *Metrics) Expression {
	return &instrumented{Expression: expr, metrics: m}
}

type instrumented struct {
	Expression
	metrics *Metrics
}

var _ ColumnEvaluator = (*instrumented)(nil)

func (e *instrumented) Eval(alloc *memory.Allocator, args []columnar.ArrayImpl) (columnar.ArrayImpl, error) {
	start := time.Now()
	out, err := e.Expression.Eval(alloc, args)
	return e.observe(start, out, err)
}

func (e *instrumented) EvalColumns(alloc *memory.Allocator, args []Column) (columnar.ArrayImpl, error) {
	start := time.Now()
	out, err := EvalColumns(e.Expression, alloc, args)
	return e.observe(start, out, err)
}

func (e *instrumented) observe(start time.Time, out columnar.ArrayImpl, err error) (columnar.ArrayImpl, error) {
	name := e.String()

	e.metrics.evalSeconds.WithLabelValues(name).Observe(time.Since(start).Seconds())
	e.metrics.evaluationsTotal.WithLabelValues(name).Inc()
	if err != nil {
		e.metrics.failuresTotal.WithLabelValues(name).Inc()
		return out, err
	}

	e.metrics.rowsTotal.WithLabelValues(name).Add(float64(out.Len()))
	e.metrics.nullRowsTotal.WithLabelValues(name).Add(float64(out.Nulls()))
	return out, nil
}
