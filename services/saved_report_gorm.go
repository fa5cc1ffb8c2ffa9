package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattwilkerson1121/Asinsights/models"
	"gorm.io/gorm"
)

// GormReportStore persists saved reports in sqlite or postgres
type GormReportStore struct {
	db    *gorm.DB
	nowFn func() time.Time
}

// NewGormReportStore migrates the saved_reports table and returns the store
func NewGormReportStore(db *gorm.DB) (*GormReportStore, error) {
	if err := db.AutoMigrate(&models.SavedReport{}); err != nil {
		return nil, fmt.Errorf("failed to migrate saved_reports: %w", err)
	}
	return &GormReportStore{db: db, nowFn: time.Now}, nil
}

func (s *GormReportStore) Save(ctx context.Context, name string, dateRange models.DateRange, metrics []models.MetricID) (models.SavedReport, error) {
	report := models.SavedReport{
		Name:      name,
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,
		Metrics:   models.EncodeMetrics(metrics),
		SavedAt:   s.nowFn().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&report).Error; err != nil {
		return models.SavedReport{}, fmt.Errorf("failed to save report: %w", err)
	}
	return report, nil
}

func (s *GormReportStore) Delete(ctx context.Context, id string) (bool, error) {
	reportID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}
	res := s.db.WithContext(ctx).Where("id = ?", reportID).Delete(&models.SavedReport{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete report: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *GormReportStore) Get(ctx context.Context, id string) (models.SavedReport, error) {
	reportID, err := uuid.Parse(id)
	if err != nil {
		return models.SavedReport{}, ErrReportNotFound
	}
	var report models.SavedReport
	if err := s.db.WithContext(ctx).Where("id = ?", reportID).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SavedReport{}, ErrReportNotFound
		}
		return models.SavedReport{}, fmt.Errorf("failed to load report: %w", err)
	}
	return report, nil
}

func (s *GormReportStore) List(ctx context.Context) ([]models.SavedReport, error) {
	var reports []models.SavedReport
	if err := s.db.WithContext(ctx).Order("saved_at ASC").Order("id ASC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if reports == nil {
		reports = []models.SavedReport{}
	}
	return reports, nil
}
