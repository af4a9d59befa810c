package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nurl "net/url"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/court-booking-engine/internal/config"
	"github.com/suchimauz/court-booking-engine/internal/core/domain"
	"github.com/suchimauz/court-booking-engine/internal/core/json_types"
	"github.com/suchimauz/court-booking-engine/internal/core/ports/out"
)

type PlatformAdapter struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	logger   out.LoggerPort
}

func NewPlatformAdapter(cfg *config.Config, logger out.LoggerPort) *PlatformAdapter {
	return &PlatformAdapter{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  cfg.Platform.URL,
		username: cfg.Platform.Username,
		password: cfg.Platform.Password,
		logger:   logger,
	}
}

// Брони в core API отдаются с датами строками, интервал собирается при маппинге
type bookingResource struct {
	ID      uuid.UUID                  `json:"id"`
	OrgID   uuid.UUID                  `json:"orgId"`
	CourtID uuid.UUID                  `json:"courtId"`
	Start   json_types.DateTime        `json:"start"`
	End     json_types.DateTimeOrEmpty `json:"end"`
	Status  domain.BookingStatus       `json:"status"`
	CoachID uuid.UUID                  `json:"coachId,omitempty"`
}

func (r bookingResource) toDomain() domain.Booking {
	return domain.Booking{
		ID:      r.ID,
		OrgID:   r.OrgID,
		CourtID: r.CourtID,
		Interval: domain.TimeInterval{
			Start: r.Start.Date,
			End:   r.End.Date,
		},
		Status:  r.Status,
		CoachID: r.CoachID,
	}
}

type maintenanceBlockResource struct {
	ID       uuid.UUID           `json:"id"`
	OrgID    uuid.UUID           `json:"orgId"`
	CourtIDs []uuid.UUID         `json:"courtIds"`
	Start    json_types.DateTime `json:"start"`
	End      json_types.DateTime `json:"end"`
	Reason   string              `json:"reason"`
}

func (r maintenanceBlockResource) toDomain() domain.MaintenanceBlock {
	return domain.MaintenanceBlock{
		ID:       r.ID,
		OrgID:    r.OrgID,
		CourtIDs: r.CourtIDs,
		Interval: domain.TimeInterval{
			Start: r.Start.Date,
			End:   r.End.Date,
		},
		Reason: r.Reason,
	}
}

func (a *PlatformAdapter) GetCourt(ctx context.Context, courtID uuid.UUID) (*domain.Court, error) {
	a.logger.Info("platform.court.fetch", out.LogFields{
		"courtId": courtID,
	})

	url := fmt.Sprintf("%s/Court/%s", a.baseURL, courtID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("platform.court.fetch_failed", out.LogFields{
			"courtId": courtID,
			"error":   err.Error(),
		})
		return nil, err
	}

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("platform.court.fetch_failed", out.LogFields{
			"courtId": courtID,
			"error":   err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("platform.court.fetch_failed", out.LogFields{
			"courtId": courtID,
			"status":  resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var court domain.Court
	if err := json.NewDecoder(resp.Body).Decode(&court); err != nil {
		a.logger.Error("platform.court.decode_failed", out.LogFields{
			"courtId": courtID,
			"error":   err.Error(),
		})
		return nil, err
	}

	a.logger.Debug("platform.court.fetch_success", out.LogFields{
		"courtId":     courtID,
		"hasLighting": court.HasLighting,
	})

	return &court, nil
}

func (a *PlatformAdapter) GetOrgLocation(ctx context.Context, orgID uuid.UUID) (*domain.OrgLocation, error) {
	a.logger.Info("platform.org_location.fetch", out.LogFields{
		"orgId": orgID,
	})

	url := fmt.Sprintf("%s/Organization/%s/location", a.baseURL, orgID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("platform.org_location.fetch_failed", out.LogFields{
			"orgId": orgID,
			"error": err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("platform.org_location.fetch_failed", out.LogFields{
			"orgId":  orgID,
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var location domain.OrgLocation
	if err := json.NewDecoder(resp.Body).Decode(&location); err != nil {
		a.logger.Error("platform.org_location.decode_failed", out.LogFields{
			"orgId": orgID,
			"error": err.Error(),
		})
		return nil, err
	}

	return &location, nil
}

func (a *PlatformAdapter) GetCourtBookings(ctx context.Context, courtID uuid.UUID, startDate, endDate time.Time) ([]domain.Booking, error) {
	url := fmt.Sprintf("%s/Court/%s/$bookings", a.baseURL, courtID)
	return a.fetchBookings(ctx, url, startDate, endDate)
}

func (a *PlatformAdapter) GetCoachBookings(ctx context.Context, coachID uuid.UUID, startDate, endDate time.Time) ([]domain.Booking, error) {
	url := fmt.Sprintf("%s/Coach/%s/$bookings", a.baseURL, coachID)
	return a.fetchBookings(ctx, url, startDate, endDate)
}

func (a *PlatformAdapter) fetchBookings(ctx context.Context, url string, startDate, endDate time.Time) ([]domain.Booking, error) {
	a.logger.Info("platform.bookings.fetch", out.LogFields{
		"url": url,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("platform.bookings.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	query := nurl.Values{}
	query.Add("begin", startDate.Format(time.RFC3339))
	query.Add("end", endDate.Format(time.RFC3339))
	req.URL.RawQuery = query.Encode()

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("platform.bookings.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("platform.bookings.fetch_failed", out.LogFields{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var bundleResponse out.PlatformBundleResponse
	if err := json.NewDecoder(resp.Body).Decode(&bundleResponse); err != nil {
		a.logger.Error("platform.bookings.decode_response_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	if len(bundleResponse.Entry) == 0 {
		return nil, nil
	}

	var bookings []domain.Booking
	for _, entry := range bundleResponse.Entry {
		var resource bookingResource
		if err := json.Unmarshal(entry.Resource, &resource); err != nil {
			a.logger.Error("platform.bookings.decode_resource_failed", out.LogFields{
				"error": err.Error(),
			})
			return nil, err
		}
		bookings = append(bookings, resource.toDomain())
	}

	a.logger.Debug("platform.bookings.fetch_success", out.LogFields{
		"count": len(bookings),
	})

	return bookings, nil
}

func (a *PlatformAdapter) GetMaintenanceBlocks(ctx context.Context, courtID uuid.UUID, startDate, endDate time.Time) ([]domain.MaintenanceBlock, error) {
	a.logger.Info("platform.blocks.fetch", out.LogFields{
		"courtId": courtID,
	})

	url := fmt.Sprintf("%s/Court/%s/$maintenance-blocks", a.baseURL, courtID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	query := nurl.Values{}
	query.Add("begin", startDate.Format(time.RFC3339))
	query.Add("end", endDate.Format(time.RFC3339))
	req.URL.RawQuery = query.Encode()

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("platform.blocks.fetch_failed", out.LogFields{
			"courtId": courtID,
			"error":   err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("platform.blocks.fetch_failed", out.LogFields{
			"courtId": courtID,
			"status":  resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var bundleResponse out.PlatformBundleResponse
	if err := json.NewDecoder(resp.Body).Decode(&bundleResponse); err != nil {
		a.logger.Error("platform.blocks.decode_response_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	if len(bundleResponse.Entry) == 0 {
		return nil, nil
	}

	var blocks []domain.MaintenanceBlock
	for _, entry := range bundleResponse.Entry {
		var resource maintenanceBlockResource
		if err := json.Unmarshal(entry.Resource, &resource); err != nil {
			a.logger.Error("platform.blocks.decode_resource_failed", out.LogFields{
				"error": err.Error(),
			})
			return nil, err
		}
		blocks = append(blocks, resource.toDomain())
	}

	a.logger.Debug("platform.blocks.fetch_success", out.LogFields{
		"count": len(blocks),
	})

	return blocks, nil
}
