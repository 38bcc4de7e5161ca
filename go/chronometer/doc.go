/*
Package chronometer measures how long things take.

Packages

chronometer is split into several packages.

	duration
		Signed spans of time with nanosecond precision and
		checked, saturating, and panicking arithmetic.
	monotonic
		Readings of a monotonic clock and the unsigned durations
		between them. Also the Clock interface for substituting
		a hand-driven clock in tests.
	instant
		Monotonic readings that produce signed durations when
		subtracted.
	units
		Units of time from nanoseconds to weeks.

Timing code

Use TimeFunc to time a single call

	elapsed := chronometer.TimeFunc(func() {
		doSomething()
	})
	fmt.Println(elapsed.PrettyFormat())

Use Stopwatch to time several steps from a common start

	elapsed := chronometer.Stopwatch()
	doFirstStep()
	fmt.Println("first step done after", elapsed())
	doSecondStep()
	fmt.Println("second step done after", elapsed())

Doing arithmetic on durations

Arithmetic on durations never overflows silently. Choose the arithmetic
that fits:

	d, ok := duration.Hours(3).CheckedAdd(duration.Minutes(20))
	if !ok {
		// overflowed
	}
	clamped := duration.Max.SaturatingAdd(duration.Second) // still duration.Max
	sum := duration.Hours(3).Add(duration.Minutes(20))     // panics on overflow

The convenience constructors Weeks, Days, Hours and Minutes wrap when
the count is too large. Use CheckedWeeks, CheckedDays, CheckedHours and
CheckedMinutes for counts that come from untrusted input:

	d, ok := duration.CheckedHours(count)
	if !ok {
		// count too large
	}

Testing with a manual clock

	clock := monotonic.NewManual()
	start := instant.NowFrom(clock)
	clock.Advance(monotonic.FromSeconds(5))
	start.ElapsedFrom(clock) // 5 seconds
*/
package chronometer
