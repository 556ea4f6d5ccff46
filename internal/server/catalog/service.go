// Package catalog exposes the course and trip listings proxied from the
// external record store. The listings are one-shot passthrough reads with
// no state of their own.
package catalog

import (
	"context"
	"fmt"

	"github.com/vrajdev/sadhana-backend/internal/common"
	"github.com/vrajdev/sadhana-backend/internal/server/config"
	"github.com/vrajdev/sadhana-backend/internal/server/teable"
)

type RecordStore interface {
	ListRecords(ctx context.Context, tableID string) ([]teable.Record, error)
}

type Service struct {
	store        RecordStore
	coursesTable string
	tripsTable   string
}

func NewService(store RecordStore, cfg *config.Config) *Service {
	return &Service{
		store:        store,
		coursesTable: cfg.CoursesTableID,
		tripsTable:   cfg.TripsTableID,
	}
}

func (s *Service) Courses(ctx context.Context) ([]teable.Record, error) {
	records, err := s.store.ListRecords(ctx, s.coursesTable)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstreamUnavailable, err)
	}
	return records, nil
}

func (s *Service) Trips(ctx context.Context) ([]teable.Record, error) {
	records, err := s.store.ListRecords(ctx, s.tripsTable)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstreamUnavailable, err)
	}
	return records, nil
}
