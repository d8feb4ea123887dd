package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/healthyfeet/salon-scheduler/internal/models"
	"github.com/healthyfeet/salon-scheduler/internal/usecase/report"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) ListSalesBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Sale, error) {

	var sales []models.Sale
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Service").
		Where("sold_at >= ? AND sold_at < ?", start, end).
		Order("sold_at DESC, id DESC").
		Find(&sales).Error; err != nil {
		return nil, err
	}

	return sales, nil
}

func (r *ReportGormRepository) CountAppointmentsOn(
	ctx context.Context,
	date time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ?", date).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReportGormRepository) CountClients(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReportGormRepository) CountActiveEmployees(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("status = ?", models.EmployeeActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ report.Repository = (*ReportGormRepository)(nil)
