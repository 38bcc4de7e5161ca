package main

import (
	"fmt"
	"github.com/Symantec/chronometer/go/chronometer"
	"github.com/Symantec/chronometer/go/chronometer/duration"
	"github.com/Symantec/chronometer/go/chronometer/instant"
	"github.com/Symantec/chronometer/go/chronometer/units"
	"github.com/Symantec/chronometer/go/healthserver"
	"github.com/gorilla/context"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"net/http"
	"os"
	"time"
)

var requestLatency = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "chronometerdemo_request_seconds",
		Help:    "Request latency measured on the monotonic clock.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	},
	[]string{"path"})

// timed records how long each request takes in requestLatency.
func timed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := instant.Now()
		next.ServeHTTP(w, r)
		requestLatency.WithLabelValues(r.URL.Path).Observe(
			start.Elapsed().AsSecondsFloat64())
	})
}

// sleepHandler sleeps for d in the optional unit query parameter,
// seconds by default, and reports how long the sleep actually took.
func sleepHandler(maxSleep duration.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		unit := units.Second
		if name := r.URL.Query().Get("unit"); name != "" {
			var err error
			if unit, err = units.Parse(name); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		requested, err := duration.ParseWithUnit(r.URL.Query().Get("d"), unit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if requested.IsNegative() || requested.Compare(maxSleep) > 0 {
			http.Error(
				w,
				fmt.Sprintf("d must be between 0 and %s", maxSleep),
				http.StatusBadRequest)
			return
		}
		goDuration, err := requested.AsGoDuration()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		elapsed := chronometer.TimeFunc(func() {
			time.Sleep(goDuration)
		})
		overshoot := elapsed.SaturatingSub(requested)
		hlog.FromRequest(r).Debug().
			Stringer("requested", requested).
			Stringer("elapsed", elapsed).
			Float64(
				"overshoot_"+unit.Abbreviation(),
				overshoot.AsSecondsFloat64()*units.FromSeconds(unit)).
			Msg("slept")
		fmt.Fprintf(w, "requested %s slept %s overshoot %s\n",
			requested.PrettyFormat(),
			elapsed.PrettyFormat(),
			overshoot.PrettyFormat())
	}
}

func newHandler(config *Config, registry *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/sleep", timed(sleepHandler(config.MaxSleep)))
	mux.Handle("/metrics", promhttp.HandlerFor(
		registry, promhttp.HandlerOpts{}))
	// healthserver registers /healthz, /readiness and /uptime here.
	mux.Handle("/", timed(http.DefaultServeMux))
	logged := hlog.NewHandler(log.Logger)(
		hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", status).
				Int("size", size).
				Str("duration", duration.FromGoDuration(d).PrettyFormat()).
				Msg("")
		})(mux))
	return context.ClearHandler(logged)
}

func main() {
	config, err := loadConfig(os.Args[1:], nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	level, _ := zerolog.ParseLevel(config.LogLevel)
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	registry := prometheus.NewRegistry()
	registry.MustRegister(requestLatency)

	elapsed := chronometer.Stopwatch()
	handler := newHandler(config, registry)
	healthserver.SetReady()
	log.Info().
		Str("address", config.Address).
		Str("startup", elapsed().PrettyFormat()).
		Msg("listening")
	if err := http.ListenAndServe(config.Address, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
