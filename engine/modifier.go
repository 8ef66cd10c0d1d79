package engine

import "time"

// buttonState tracks one physical button across ticks for tap vs hold
// classification. It is the only state that survives a tick and is owned
// exclusively by the Tracker.
type buttonState struct {
	pressed   bool
	pressedAt time.Time
	wasHeld   bool // press duration exceeded the tap threshold
}

// update advances the button state for one tick and reports the transition.
func (b *buttonState) update(pressed bool, now time.Time, threshold time.Duration) (tap, holdStart, holdEnd bool) {
	switch {
	case pressed && !b.pressed:
		b.pressed = true
		b.pressedAt = now
		b.wasHeld = false

	case pressed && b.pressed:
		if !b.wasHeld && now.Sub(b.pressedAt) > threshold {
			b.wasHeld = true
			holdStart = true
		}

	case !pressed && b.pressed:
		b.pressed = false
		switch {
		case b.wasHeld:
			// The press was consumed as a hold; never also a tap.
			holdEnd = true
		case now.Sub(b.pressedAt) <= threshold:
			// Release exactly at the threshold still counts as a tap.
			tap = true
		}
	}
	return tap, holdStart, holdEnd
}

// Modifiers is the per-tick classification of both buttons. Held and tapped
// are mutually exclusive for a button within one tick.
type Modifiers struct {
	CHeld, ZHeld           bool
	CTapped, ZTapped       bool
	CHoldEnded, ZHoldEnded bool
}

// Tracker classifies C and Z button transitions as tap, hold-start,
// hold-continue or release against a configured tap threshold.
type Tracker struct {
	c, z      buttonState
	threshold time.Duration
}

// NewTracker returns a Tracker using the given tap-vs-hold threshold.
func NewTracker(tapThreshold time.Duration) *Tracker {
	return &Tracker{threshold: tapThreshold}
}

// Update advances both buttons for one tick and returns the resulting
// modifier context. A button counts as held only once its press duration
// exceeds the threshold, so a quick press never flickers a modifier mode.
func (t *Tracker) Update(cPressed, zPressed bool, now time.Time) Modifiers {
	var m Modifiers
	m.CTapped, _, m.CHoldEnded = t.c.update(cPressed, now, t.threshold)
	m.ZTapped, _, m.ZHoldEnded = t.z.update(zPressed, now, t.threshold)
	m.CHeld = t.c.pressed && t.c.wasHeld
	m.ZHeld = t.z.pressed && t.z.wasHeld
	return m
}
