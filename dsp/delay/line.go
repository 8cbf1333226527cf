// Package delay provides a fixed-capacity circular delay line.
package delay

import "fmt"

// Line is a circular delay line holding the most recent Len() samples.
type Line struct {
	buffer   []float64
	writePos int
}

// New returns a zeroed delay line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}

	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns the capacity in samples.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Push stores one sample as the newest element, dropping the oldest.
func (d *Line) Push(sample float64) {
	d.buffer[d.writePos] = sample

	d.writePos++
	if d.writePos == len(d.buffer) {
		d.writePos = 0
	}
}

// Tap returns the sample pushed n pushes ago; Tap(0) is the newest.
// n is clamped to [0, Len()-1].
func (d *Line) Tap(n int) float64 {
	size := len(d.buffer)
	if n < 0 {
		n = 0
	} else if n >= size {
		n = size - 1
	}

	pos := d.writePos - 1 - n
	if pos < 0 {
		pos += size
	}

	return d.buffer[pos]
}

// Reset clears the line.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}

	d.writePos = 0
}
