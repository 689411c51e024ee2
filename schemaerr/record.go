package schemaerr

import "fmt"

// CodeType is the record code reported by the type constraint.
const CodeType = "type"

// Record is one user-data validation failure.
type Record struct {
	// Path locates the offending value in the validated document (a JSON Pointer).
	Path string `json:"path"`

	// Message is the human-readable diagnostic.
	Message string `json:"message"`

	// Code names the constraint that failed, e.g. CodeType.
	Code string `json:"code"`
}

// String formats the record as "[path] message".
func (r Record) String() string {
	path := r.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("[%s] %s", path, r.Message)
}

// Sink receives records. Constraints only ever append to it.
type Sink interface {
	Add(r Record)
}

// Collector is a Sink backed by a slice. It is not safe for concurrent use;
// each validation owns its own Collector.
type Collector struct {
	records []Record
}

// Add appends r.
func (c *Collector) Add(r Record) {
	c.records = append(c.records, r)
}

// Records returns a copy of the collected records in insertion order.
func (c *Collector) Records() []Record {
	if len(c.records) == 0 {
		return nil
	}
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of collected records.
func (c *Collector) Len() int {
	return len(c.records)
}
