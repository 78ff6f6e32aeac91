package effect

// Counter hands out increasing values starting from a chosen origin.
// A Counter is not safe for concurrent use.
type Counter struct {
	next uint64
}

// NewCounter returns a Counter whose first Next yields start.
func NewCounter(start uint64) *Counter {
	return &Counter{next: start}
}

// Next returns the current value and advances the counter.
func (c *Counter) Next() Effect[uint64] {
	v := c.next
	c.next++
	return Of(v)
}

// Peek reports the value the next call to Next will return.
func (c *Counter) Peek() uint64 {
	return c.next
}
