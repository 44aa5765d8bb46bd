package service

import (
	"fmt"
	"time"

	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/repository"
)

// maxRangeDays bounds a manual range sync
const maxRangeDays = 366

// Listing defaults
const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// ValidateFrequency checks a sync frequency in minutes
func ValidateFrequency(minutes int) error {
	if !models.ValidSyncFrequency(minutes) {
		return fmt.Errorf("syncFrequencyMinutes must be between %d and %d, got %d",
			models.MinSyncFrequencyMinutes, models.MaxSyncFrequencyMinutes, minutes)
	}
	return nil
}

// ValidateDateRange checks an inclusive calendar date range
func ValidateDateRange(start, end time.Time) error {
	if start.IsZero() {
		return fmt.Errorf("startDate is required")
	}
	if end.IsZero() {
		return fmt.Errorf("endDate is required")
	}
	if start.After(end) {
		return fmt.Errorf("startDate %s is after endDate %s",
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	if end.Sub(start) > maxRangeDays*24*time.Hour {
		return fmt.Errorf("date range must not exceed %d days", maxRangeDays)
	}
	return nil
}

// ListParams are the 1-based paging inputs of a listing endpoint
type ListParams struct {
	Page     int
	PageSize int
}

// Normalize fills defaults and rejects out-of-range values
func (p ListParams) Normalize() (ListParams, error) {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	if p.Page < 1 {
		return p, fmt.Errorf("page must be at least 1")
	}
	if p.PageSize < 1 || p.PageSize > MaxPageSize {
		return p, fmt.Errorf("pageSize must be between 1 and %d", MaxPageSize)
	}
	return p, nil
}

func (p ListParams) repositoryPage() repository.Page {
	return repository.Page{Limit: p.PageSize, Offset: (p.Page - 1) * p.PageSize}
}

// ListResult is one page of a listing
type ListResult[T any] struct {
	Items    []T
	Page     int
	PageSize int
	Total    int
}
