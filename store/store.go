// Package store provides sinks that receive one document per classified
// read, and aggregate statistics over a previously imported collection.
package store

import (
	"github.com/elowsky/screads/reads"
)

// Sink receives classified read records. Implementations own any
// buffering; Close flushes whatever remains.
type Sink interface {
	Emit(rec reads.Record) error
	Close() error
}

// Memory is an in-memory Sink used by tests and dry-run imports.
type Memory struct {
	Records []reads.Record
}

func (m *Memory) Emit(rec reads.Record) error {
	m.Records = append(m.Records, rec)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
