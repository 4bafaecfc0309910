package admin

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"gobhraman/src/models"
	"gobhraman/src/types"

	"gorm.io/gorm"
)

// SCREENSHOT_URL_TTL bounds how long a presigned screenshot link stays
// valid. The raw storage key is never handed to the browser.
const SCREENSHOT_URL_TTL = time.Hour

// Presigner exchanges an opaque storage key for a short-lived signed URL.
type Presigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// Service is the admin reconciliation layer: it loads persisted bookings
// and leads, filters them, and applies status transitions. Consistency
// model is re-fetch-after-write: every mutation is followed by a fresh
// LoadAll, never an optimistic local patch.
type Service struct {
	db        *gorm.DB
	presigner Presigner
}

func NewService(db *gorm.DB, presigner Presigner) *Service {
	return &Service{db: db, presigner: presigner}
}

// LoadResult carries both lists and their independent errors. A failed
// list stays empty rather than stale.
type LoadResult struct {
	Bookings    []models.Booking
	Leads       []models.InterestedLead
	BookingsErr error
	LeadsErr    error
}

// LoadAll fetches bookings and leads together, newest first. The two
// fetches run concurrently and fail independently: one failing does not
// cancel the other.
func (s *Service) LoadAll(ctx context.Context) LoadResult {
	var res LoadResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		err := s.db.WithContext(ctx).
			Model(&models.Booking{}).
			Order("created_at DESC").
			Find(&res.Bookings).
			Error
		if err != nil {
			log.Printf("Could not load bookings: %s\n", err.Error())
			res.Bookings = nil
			res.BookingsErr = err
		}
	}()
	go func() {
		defer wg.Done()
		err := s.db.WithContext(ctx).
			Model(&models.InterestedLead{}).
			Order("created_at DESC").
			Find(&res.Leads).
			Error
		if err != nil {
			log.Printf("Could not load leads: %s\n", err.Error())
			res.Leads = nil
			res.LeadsErr = err
		}
	}()
	wg.Wait()
	return res
}

// SetBookingStatus persists a status transition. Only confirmed and
// cancelled are reachable. Callers must re-run LoadAll to observe the
// update; a failed write leaves their in-memory list untouched.
func (s *Service) SetBookingStatus(ctx context.Context, id string, status types.BookingStatus, notes string) error {
	if !types.ValidBookingTransition(status) {
		return fmt.Errorf("invalid booking status %q", status)
	}
	patch := map[string]any{"status": status}
	if notes != "" {
		patch["admin_notes"] = notes
	}
	tx := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(patch)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetLeadStatus persists a lead transition, same re-fetch discipline as
// SetBookingStatus.
func (s *Service) SetLeadStatus(ctx context.Context, id string, status types.LeadStatus) error {
	if !types.ValidLeadTransition(status) {
		return fmt.Errorf("invalid lead status %q", status)
	}
	tx := s.db.WithContext(ctx).
		Model(&models.InterestedLead{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ScreenshotURL exchanges the booking's opaque screenshot key for a
// signed retrieval URL valid for SCREENSHOT_URL_TTL.
func (s *Service) ScreenshotURL(ctx context.Context, key string) (string, error) {
	if s.presigner == nil {
		return "", fmt.Errorf("no presigner configured")
	}
	return s.presigner.PresignGet(ctx, key, SCREENSHOT_URL_TTL)
}

// Stats summarizes loaded bookings for the dashboard header.
func Stats(bookings []models.Booking) types.AdminStats {
	var stats types.AdminStats
	for _, b := range bookings {
		switch b.Status {
		case types.BOOKING_PENDING:
			stats.Pending++
		case types.BOOKING_CONFIRMED:
			stats.Confirmed++
		case types.BOOKING_CANCELLED:
			stats.Cancelled++
		}
	}
	stats.Total = len(bookings)
	return stats
}
