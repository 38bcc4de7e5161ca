/*
	Package healthserver registers HTTP handlers for health, readiness and
	uptime checks

	Package healthserver registers HTTP handlers for the /healthz,
	/readiness and /uptime paths. These handlers are always registered
	(this is done at package init time).

	By default, the /healthz handler responds with "OK".

	By default, the /readiness handler responds with a HTTP header with
	"503 Service Unavailable" and followed by "not ready".

	The /uptime handler responds with the time elapsed since the process
	started as measured by the monotonic clock e.g "3h 12m 5s". With the
	query parameter format=seconds, it responds in seconds instead
	e.g "11525.000000000".
*/
package healthserver

import (
	"github.com/Symantec/chronometer/go/chronometer/duration"
)

// SetHealthy will make the /healthz HTTP handler respond with "OK".
func SetHealthy() {
	setHealth("")
}

// SetNotHealthy will make the /healthz HTTP handler respond with a HTTP header
// with "503 Service Unavailable" and the status string will be returned
// following the HTTP header.
func SetNotHealthy(status string) {
	if status == "" || status == "OK" {
		panic("OK status not permitted")
	}
	setHealth(status)
}

// SetNotReady will make the /readiness HTTP handler respond with a HTTP header
// with "503 Service Unavailable" and the status string will be returned
// following the HTTP header.
func SetNotReady(status string) {
	if status == "" || status == "OK" {
		panic("OK status not permitted")
	}
	setReady(status)
}

// SetReady will make the /readiness HTTP handler respond with "OK".
func SetReady() {
	setReady("")
}

// Uptime returns how long this process has been running.
func Uptime() duration.Duration {
	return uptime()
}
