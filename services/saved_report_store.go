package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mattwilkerson1121/Asinsights/models"
)

var (
	ErrReportNotFound    = errors.New("saved report not found")
	ErrInvalidReportName = errors.New("report name is required")
)

// ReportStore keeps saved reports in save order. Names are not unique.
// Deleting an unknown id is a no-op and reports deleted=false.
type ReportStore interface {
	Save(ctx context.Context, name string, dateRange models.DateRange, metrics []models.MetricID) (models.SavedReport, error)
	Delete(ctx context.Context, id string) (bool, error)
	Get(ctx context.Context, id string) (models.SavedReport, error)
	List(ctx context.Context) ([]models.SavedReport, error)
}

// MemoryReportStore lives as long as the process, like the dashboard session
type MemoryReportStore struct {
	mu      sync.RWMutex
	reports []models.SavedReport
	nowFn   func() time.Time
}

func NewMemoryReportStore() *MemoryReportStore {
	return &MemoryReportStore{nowFn: time.Now}
}

func (s *MemoryReportStore) Save(ctx context.Context, name string, dateRange models.DateRange, metrics []models.MetricID) (models.SavedReport, error) {
	report := models.SavedReport{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,
		Metrics:   models.EncodeMetrics(metrics),
		SavedAt:   s.nowFn().UTC(),
	}

	s.mu.Lock()
	s.reports = append(s.reports, report)
	s.mu.Unlock()
	return report, nil
}

func (s *MemoryReportStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.reports {
		if r.ID.String() == id {
			s.reports = append(s.reports[:i:i], s.reports[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryReportStore) Get(ctx context.Context, id string) (models.SavedReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reports {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return models.SavedReport{}, ErrReportNotFound
}

func (s *MemoryReportStore) List(ctx context.Context) ([]models.SavedReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SavedReport{}, s.reports...), nil
}
