package monotonic

import (
	"fmt"
	"github.com/aristanetworks/goarista/monotime"
	"math/bits"
	"sync"
)

const (
	nanosPerSecond = 1000000000
)

func newDuration(secs uint64, nanos uint32) Duration {
	carry := uint64(nanos / nanosPerSecond)
	total, overflow := bits.Add64(secs, carry, 0)
	if overflow != 0 {
		panic("monotonic: overflow in NewDuration")
	}
	return Duration{secs: total, nanos: nanos % nanosPerSecond}
}

func fromNanos(n uint64) Duration {
	return Duration{secs: n / nanosPerSecond, nanos: uint32(n % nanosPerSecond)}
}

// asNanos returns d as a nanosecond count. ok is false if that count
// does not fit in 64 bits.
func (d Duration) asNanos() (n uint64, ok bool) {
	hi, lo := bits.Mul64(d.secs, nanosPerSecond)
	if hi != 0 {
		return 0, false
	}
	sum, carry := bits.Add64(lo, uint64(d.nanos), 0)
	if carry != 0 {
		return 0, false
	}
	return sum, true
}

func (d Duration) checkedAdd(other Duration) (result Duration, ok bool) {
	secs, carry := bits.Add64(d.secs, other.secs, 0)
	if carry != 0 {
		return
	}
	nanos := d.nanos + other.nanos
	if nanos >= nanosPerSecond {
		nanos -= nanosPerSecond
		secs, carry = bits.Add64(secs, 1, 0)
		if carry != 0 {
			return
		}
	}
	return Duration{secs: secs, nanos: nanos}, true
}

func (d Duration) checkedSub(other Duration) (result Duration, ok bool) {
	secs, borrow := bits.Sub64(d.secs, other.secs, 0)
	if borrow != 0 {
		return
	}
	nanos := d.nanos
	if nanos < other.nanos {
		if secs == 0 {
			return
		}
		secs--
		nanos += nanosPerSecond
	}
	return Duration{secs: secs, nanos: nanos - other.nanos}, true
}

func (d Duration) compare(other Duration) int {
	switch {
	case d.secs < other.secs:
		return -1
	case d.secs > other.secs:
		return 1
	case d.nanos < other.nanos:
		return -1
	case d.nanos > other.nanos:
		return 1
	default:
		return 0
	}
}

func (d Duration) toString() string {
	return fmt.Sprintf("%d.%09d", d.secs, d.nanos)
}

func (t Time) checkedAdd(d Duration) (result Time, ok bool) {
	n, ok := d.asNanos()
	if !ok {
		return
	}
	sum, carry := bits.Add64(t.ns, n, 0)
	if carry != 0 {
		return Time{}, false
	}
	return Time{ns: sum}, true
}

func (t Time) checkedSub(d Duration) (result Time, ok bool) {
	n, ok := d.asNanos()
	if !ok {
		return
	}
	diff, borrow := bits.Sub64(t.ns, n, 0)
	if borrow != 0 {
		return Time{}, false
	}
	return Time{ns: diff}, true
}

func systemNow() Time {
	return Time{ns: monotime.Now()}
}

type manual struct {
	mu      sync.Mutex
	current Time
}

func (m *manual) now() Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *manual) advance(d Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.AddDuration(d)
}

func (m *manual) set(t Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.Before(m.current) {
		panic("monotonic: manual clock cannot go backwards")
	}
	m.current = t
}

var (
	clockMu sync.RWMutex // Protects current clock
	current Clock        = System{}
)

func defaultClock() Clock {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return current
}

func setDefaultClock(c Clock) (restore func()) {
	clockMu.Lock()
	defer clockMu.Unlock()
	previous := current
	current = c
	return func() {
		clockMu.Lock()
		defer clockMu.Unlock()
		current = previous
	}
}
