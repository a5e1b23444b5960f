package commons

import (
	"sync"
	"time"
)

// CallRecord is one API call observation for the debug overlay.
type CallRecord struct {
	Method   string
	URL      string
	Status   int
	Duration time.Duration
	At       time.Time
}

// defaultRecorderCapacity bounds the debug overlay history.
const defaultRecorderCapacity = 64

// Recorder keeps a bounded in-memory history of API calls. It backs the
// debug overlay and is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	records  []CallRecord
	capacity int
}

// NewRecorder returns a recorder with the default capacity.
func NewRecorder() *Recorder {
	return &Recorder{capacity: defaultRecorderCapacity}
}

// Record appends one call observation, evicting the oldest when full.
func (r *Recorder) Record(record CallRecord) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.capacity <= 0 {
		r.capacity = defaultRecorderCapacity
	}
	r.records = append(r.records, record)
	if len(r.records) > r.capacity {
		r.records = r.records[len(r.records)-r.capacity:]
	}
}

// Recent returns the recorded calls, newest last.
func (r *Recorder) Recent() []CallRecord {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CallRecord, len(r.records))
	copy(out, r.records)
	return out
}
