// Package sadhana records and lists daily practice stats (japa rounds and
// reading time) in each account's private table in the external record
// store.
package sadhana

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vrajdev/sadhana-backend/internal/common"
	"github.com/vrajdev/sadhana-backend/internal/server/teable"
)

// RecordStore is the subset of the record store client used by this service.
type RecordStore interface {
	ListRecords(ctx context.Context, tableID string) ([]teable.Record, error)
	CreateRecord(ctx context.Context, tableID string, fields map[string]any) (*teable.Record, error)
}

// Entry is one day's practice stats. Immutable once recorded.
type Entry struct {
	Date        string `json:"date"`
	Rounds      int    `json:"rounds"`
	ReadingTime int    `json:"reading_time"`
}

type Service struct {
	store RecordStore
}

func NewService(store RecordStore) *Service {
	return &Service{store: store}
}

// CoerceCount converts a decoded JSON value to a non-negative integer.
// Numbers and numeric strings are accepted; anything else is a validation
// error. A nil value means the field was missing from the request.
func CoerceCount(v any) (int, error) {
	var n int
	switch value := v.(type) {
	case nil:
		return 0, common.ErrorValidation
	case float64:
		n = int(value)
	case int:
		n = value
	case string:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, common.ErrorValidation
		}
		n = parsed
	default:
		return 0, common.ErrorValidation
	}
	if n < 0 {
		return 0, common.ErrorValidation
	}
	return n, nil
}

// Record writes one entry into the account's stats table. The upstream
// error is kept in the chain so the HTTP layer can propagate the upstream
// status verbatim.
func (s *Service) Record(ctx context.Context, tableID string, date string, rounds int, readingTime int) (*Entry, error) {

	if tableID == "" {
		return nil, common.ErrorMissingPartition
	}
	if date == "" || rounds < 0 || readingTime < 0 {
		return nil, common.ErrorValidation
	}

	_, err := s.store.CreateRecord(ctx, tableID, map[string]any{
		"date":         date,
		"rounds":       rounds,
		"reading-time": readingTime,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUpstreamWrite, err)
	}

	return &Entry{Date: date, Rounds: rounds, ReadingTime: readingTime}, nil
}

// List reads all entries from the account's stats table. Missing fields
// default to empty/zero. Unlike Record, a read failure is reported as a
// generic unavailability, never as the upstream status.
func (s *Service) List(ctx context.Context, tableID string) ([]Entry, error) {

	if tableID == "" {
		return nil, common.ErrorMissingPartition
	}

	records, err := s.store.ListRecords(ctx, tableID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstreamUnavailable, err)
	}

	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, entryFromRecord(r))
	}

	return entries, nil
}

func entryFromRecord(r teable.Record) Entry {
	e := Entry{}
	if v, ok := r.Fields["date"].(string); ok {
		e.Date = v
	}
	e.Rounds = countField(r.Fields, "rounds")
	e.ReadingTime = countField(r.Fields, "reading_time", "reading-time")
	return e
}

// countField reads the first present key as an integer. The store column
// is named "reading-time" while the API exposes "reading_time", so both
// spellings are checked.
func countField(fields map[string]any, keys ...string) int {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok {
			continue
		}
		n, err := CoerceCount(v)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}
