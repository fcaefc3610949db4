// Package log holds the process-wide logger.
package log

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	dslog "github.com/grafana/dskit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Logger is a shared go-kit logger. It discards everything until
// [InitLogger] is called.
var Logger = log.NewNopLogger()

var plogger *prometheusLogger

// InitLogger initialises the global logger to write format ("logfmt" or
// "json") to stderr, dropping lines below lvl. The number of logged lines is
// reported to reg by level.
func InitLogger(format string, lvl dslog.Level, reg prometheus.Registerer) {
	plogger = newPrometheusLogger(newBaseLogger(format), lvl, reg)
	Logger = log.With(plogger, "ts", log.DefaultTimestampUTC, "caller", log.Caller(4))
}

func newBaseLogger(format string) log.Logger {
	w := log.NewSyncWriter(os.Stderr)
	if format == "json" {
		return log.NewJSONLogger(w)
	}
	return log.NewLogfmtLogger(w)
}

// prometheusLogger filters log lines by level and counts the lines it
// writes.
type prometheusLogger struct {
	baseLogger  log.Logger
	logMessages *prometheus.CounterVec

	mtx    sync.RWMutex
	logger log.Logger
}

func newPrometheusLogger(base log.Logger, lvl dslog.Level, reg prometheus.Registerer) *prometheusLogger {
	pl := &prometheusLogger{
		baseLogger: base,
		logMessages: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "colexpr_log_messages_total",
			Help: "Total number of log messages by level",
		}, []string{"level"}),
	}
	pl.setLevel(lvl)
	return pl
}

func (pl *prometheusLogger) setLevel(lvl dslog.Level) {
	pl.mtx.Lock()
	defer pl.mtx.Unlock()
	pl.logger = level.NewFilter(pl.baseLogger, lvl.Option)
}

// Log implements [log.Logger].
func (pl *prometheusLogger) Log(kv ...interface{}) error {
	pl.mtx.RLock()
	logger := pl.logger
	pl.mtx.RUnlock()

	if logger == nil {
		logger = pl.baseLogger
	}
	if err := logger.Log(kv...); err != nil {
		return err
	}

	if pl.logMessages != nil {
		lvl := "info"
		for i := 0; i+1 < len(kv); i += 2 {
			if kv[i] == level.Key() {
				if v, ok := kv[i+1].(level.Value); ok {
					lvl = v.String()
				}
			}
		}
		pl.logMessages.WithLabelValues(lvl).Inc()
	}
	return nil
}

type levelHandlerResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

// LevelHandler returns an HTTP handler reporting the current log level on
// GET and changing it to the form value log_level on POST.
func LevelHandler(currentLogLevel *dslog.Level) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeLevelResponse(w, http.StatusOK, levelHandlerResponse{
				Message: fmt.Sprintf("Current log level is %s", currentLogLevel.String()),
			})

		case http.MethodPost:
			logLevel := r.FormValue("log_level")
			if err := currentLogLevel.Set(logLevel); err != nil {
				writeLevelResponse(w, http.StatusBadRequest, levelHandlerResponse{
					Status:  "failed",
					Message: err.Error(),
				})
				return
			}

			if plogger != nil {
				plogger.setLevel(*currentLogLevel)
			}
			writeLevelResponse(w, http.StatusOK, levelHandlerResponse{
				Status:  "success",
				Message: fmt.Sprintf("Log level set to %s", logLevel),
			})

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func writeLevelResponse(w http.ResponseWriter, code int, resp levelHandlerResponse) {
	body, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}
