// Package responsewriter wraps http.ResponseWriter so the access log and
// metrics middleware can read the status code and body size after the
// handler has run.
package responsewriter

import (
	"net/http"
)

// Recorder captures the status code and byte count of a response.
// Before any write the status reports 200, matching net/http behaviour.
type Recorder struct {
	http.ResponseWriter
	status    int
	size      int
	committed bool
}

// Wrap returns a Recorder around w.
func Wrap(w http.ResponseWriter) *Recorder {
	return &Recorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code. Repeated calls are ignored;
// only the first one reaches the wire anyway.
func (rec *Recorder) WriteHeader(status int) {
	if rec.committed {
		return
	}
	rec.status = status
	rec.committed = true
	rec.ResponseWriter.WriteHeader(status)
}

// Write commits an implicit 200 on first use and accumulates the body size.
func (rec *Recorder) Write(p []byte) (int, error) {
	if !rec.committed {
		rec.WriteHeader(http.StatusOK)
	}
	n, err := rec.ResponseWriter.Write(p)
	rec.size += n
	return n, err
}

// StatusCode returns the recorded status code.
func (rec *Recorder) StatusCode() int { return rec.status }

// BytesWritten returns the number of body bytes written so far.
func (rec *Recorder) BytesWritten() int { return rec.size }

// Unwrap supports http.ResponseController.
func (rec *Recorder) Unwrap() http.ResponseWriter { return rec.ResponseWriter }
