package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewRegistry creates a separate registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

type Metrics struct {
	RowsRead        prometheus.Counter
	RowsDropped     *prometheus.CounterVec
	RecordsWritten  prometheus.Counter
	RecordsExported prometheus.Counter
	BusinessesRead  prometheus.Counter
	Matches         prometheus.Counter
	RunSeconds      *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RowsRead: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "demeter_raw_rows_read_total",
			Help: "Total number of raw rows read by the preprocessor.",
		}),
		RowsDropped: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "demeter_raw_rows_dropped_total",
			Help: "Total number of raw rows dropped by the preprocessor.",
		}, []string{"reason"}),
		RecordsWritten: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "demeter_records_written_total",
			Help: "Total number of cleaned records written to the dataset.",
		}),
		RecordsExported: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "demeter_records_exported_total",
			Help: "Total number of cleaned records copied to the database.",
		}),
		BusinessesRead: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "demeter_businesses_read_total",
			Help: "Total number of businesses loaded by the reporter.",
		}),
		Matches: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "demeter_nearby_restaurants_total",
			Help: "Total number of nearby restaurants reported.",
		}),
		RunSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "demeter_run_duration_seconds",
			Help:    "Duration of a batch run.",
			Buckets: prometheus.DefBuckets,
		}, []string{"job"}),
	}
}

// WriteTextfile dumps everything gathered by g into path in the Prometheus text format,
// for pickup by a node_exporter textfile collector. An empty path is a no-op.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, g)
}
