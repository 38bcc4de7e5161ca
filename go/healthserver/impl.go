package healthserver

import (
	"github.com/Symantec/chronometer/go/chronometer/duration"
	"github.com/Symantec/chronometer/go/chronometer/instant"
	"github.com/Symantec/chronometer/go/chronometer/monotonic"
	"github.com/rs/zerolog/log"
	"net/http"
	"sync"
)

var (
	okSlice      []byte     = []byte("OK")
	mutex        sync.Mutex // Protect everything below.
	healthStatus string
	readyStatus  string = "not ready"
)

// Guarded by mutex.
var (
	clock     = monotonic.Default()
	startTime = instant.NowFrom(clock)
)

func init() {
	http.HandleFunc("/healthz", healthzHandler)
	http.HandleFunc("/readiness", readinessHandler)
	http.HandleFunc("/uptime", uptimeHandler)
}

func commonHandler(w http.ResponseWriter, status string) {
	if status == "" {
		w.Write(okSlice)
	} else {
		http.Error(w, status, http.StatusServiceUnavailable)
	}
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	mutex.Lock()
	status := healthStatus
	mutex.Unlock()
	commonHandler(w, status)
}

func readinessHandler(w http.ResponseWriter, r *http.Request) {
	mutex.Lock()
	status := readyStatus
	mutex.Unlock()
	commonHandler(w, status)
}

func uptimeHandler(w http.ResponseWriter, r *http.Request) {
	elapsed := uptime()
	if r.URL.Query().Get("format") == "seconds" {
		w.Write([]byte(elapsed.String()))
		return
	}
	w.Write([]byte(elapsed.PrettyFormat()))
}

func uptime() duration.Duration {
	mutex.Lock()
	c, start := clock, startTime
	mutex.Unlock()
	return start.ElapsedFrom(c)
}

// resetClock restarts the uptime count on c.
func resetClock(c monotonic.Clock) {
	mutex.Lock()
	defer mutex.Unlock()
	clock = c
	startTime = instant.NowFrom(c)
}

func setHealth(status string) {
	mutex.Lock()
	defer mutex.Unlock()
	if status != healthStatus {
		log.Info().Str("status", statusText(status)).Msg("health changed")
	}
	healthStatus = status
}

func setReady(status string) {
	mutex.Lock()
	defer mutex.Unlock()
	if status != readyStatus {
		log.Info().Str("status", statusText(status)).Msg("readiness changed")
	}
	readyStatus = status
}

func statusText(status string) string {
	if status == "" {
		return string(okSlice)
	}
	return status
}
