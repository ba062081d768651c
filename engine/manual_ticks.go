package engine

import "math/bits"

// ManualTicks is a scripted tick source
// Push queues per-poll results; Add accumulates ticks delivered on the next poll
type ManualTicks struct {
	script  []uint
	pending uint
	polls   int
}

// NewManualTicks creates a source that returns script entries one per poll, then 0
func NewManualTicks(script ...uint) *ManualTicks {
	return &ManualTicks{script: append([]uint(nil), script...)}
}

// Push appends per-poll results to the script
func (m *ManualTicks) Push(ticks ...uint) {
	m.script = append(m.script, ticks...)
}

// Add accumulates ticks for the next poll, saturating at the uint limit
func (m *ManualTicks) Add(ticks uint) {
	m.pending = satAdd(m.pending, ticks)
}

// Poll returns accumulated ticks plus the next scripted entry
func (m *ManualTicks) Poll() uint {
	m.polls++
	n := m.pending
	m.pending = 0
	if len(m.script) > 0 {
		n = satAdd(n, m.script[0])
		m.script = m.script[1:]
	}
	return n
}

// Reset drops accumulated ticks; queued script entries are future polls and stay
func (m *ManualTicks) Reset() {
	m.pending = 0
}

// Polls returns how many times Poll was called
func (m *ManualTicks) Polls() int {
	return m.polls
}

func satAdd(a, b uint) uint {
	sum, carry := bits.Add(a, b, 0)
	if carry != 0 {
		return ^uint(0)
	}
	return sum
}
