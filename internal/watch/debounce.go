package watch

import "time"

// Debouncer coalesces bursts of triggers into one trailing-edge tick,
// delivered on C once no trigger arrived for the delay.
// It is not safe for concurrent use; it belongs to one select loop
type Debouncer struct {
	delay time.Duration
	timer *time.Timer
	armed bool
}

// NewDebouncer creates a disarmed Debouncer
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger (re)arms the debouncer, pushing the tick back by the delay
func (d *Debouncer) Trigger() {
	if d.timer == nil {
		d.timer = time.NewTimer(d.delay)
	} else {
		d.timer.Reset(d.delay)
	}
	d.armed = true
}

// C returns the tick channel, or nil while disarmed so a select on it
// blocks forever
func (d *Debouncer) C() <-chan time.Time {
	if !d.armed {
		return nil
	}
	return d.timer.C
}

// Done disarms the debouncer after its tick was received
func (d *Debouncer) Done() {
	d.armed = false
}

// Stop disarms the debouncer and releases its timer
func (d *Debouncer) Stop() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.armed = false
}
