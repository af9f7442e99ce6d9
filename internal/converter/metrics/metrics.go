package metrics

import (
	"github.com/langowen/converter/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "converter"

// Rejection reasons used as label values.
const (
	ReasonChoice      = "choice"
	ReasonNotNumber   = "not_number"
	ReasonNotPositive = "not_positive"
	ReasonConversion  = "conversion"
)

// Recorder counts session outcomes on its own registry.
type Recorder struct {
	registry    *prometheus.Registry
	fetches     *prometheus.CounterVec
	conversions *prometheus.CounterVec
	rejections  *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_fetch_total",
			Help:      "Exchange rate fetches by result.",
		}, []string{"result"}),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Successful conversions by currency pair.",
		}, []string{"from", "to"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_input_total",
			Help:      "Rejected user input by reason.",
		}, []string{"reason"}),
	}

	r.registry.MustRegister(r.fetches, r.conversions, r.rejections)

	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Fetch(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	r.fetches.WithLabelValues(result).Inc()
}

func (r *Recorder) Conversion(pair entities.Pair) {
	r.conversions.WithLabelValues(string(pair.From), string(pair.To)).Inc()
}

func (r *Recorder) Rejected(reason string) {
	r.rejections.WithLabelValues(reason).Inc()
}
