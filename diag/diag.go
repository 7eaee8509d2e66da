// Package diag collects the non-fatal observations a decode makes along
// the way: magic-header mismatches, undocumented discriminator bytes,
// and other conditions the format tolerates but that are worth
// surfacing to a caller doing reverse-engineering work.
package diag

import "fmt"

// Warning is a single non-fatal decode-time observation.
type Warning struct {
	Offset  int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("offset %d: %s", w.Offset, w.Message)
}

// Collector accumulates Warnings for the duration of one decode call.
// Its zero value is ready to use.
type Collector struct {
	warnings []Warning
}

// Add appends a warning at offset with the given formatted message.
func (c *Collector) Add(offset int, format string, args ...any) {
	c.warnings = append(c.warnings, Warning{Offset: offset, Message: fmt.Sprintf(format, args...)})
}

// Warnings returns the accumulated warnings in the order they were
// recorded. The returned slice must not be modified.
func (c *Collector) Warnings() []Warning {
	return c.warnings
}
