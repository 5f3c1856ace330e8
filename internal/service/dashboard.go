package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository"
)

// DashboardStats is the aggregate view shown on the dashboard landing page.
type DashboardStats struct {
	Events        int64                        `json:"events"`
	Contacts      int64                        `json:"contacts"`
	Speakers      int64                        `json:"speakers"`
	Invoices      int64                        `json:"invoices"`
	EventsByState map[domain.EventStatus]int64 `json:"events_by_status"`
}

type counter interface {
	Count(ctx context.Context, q repository.ListQuery) (int64, error)
}

type DashboardService struct {
	events   EventRepository
	contacts counter
	speakers counter
	invoices counter
}

func NewDashboardService(events EventRepository, contacts, speakers, invoices counter) *DashboardService {
	return &DashboardService{
		events:   events,
		contacts: contacts,
		speakers: speakers,
		invoices: invoices,
	}
}

// GetStats issues the independent entity counts concurrently and awaits
// them jointly.
func (s *DashboardService) GetStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.Events, err = s.events.Count(gCtx, repository.ListQuery{})
		if err != nil {
			return fmt.Errorf("s.events.Count -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stats.Contacts, err = s.contacts.Count(gCtx, repository.ListQuery{})
		if err != nil {
			return fmt.Errorf("s.contacts.Count -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stats.Speakers, err = s.speakers.Count(gCtx, repository.ListQuery{})
		if err != nil {
			return fmt.Errorf("s.speakers.Count -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stats.Invoices, err = s.invoices.Count(gCtx, repository.ListQuery{})
		if err != nil {
			return fmt.Errorf("s.invoices.Count -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stats.EventsByState, err = s.events.CountByStatus(gCtx)
		if err != nil {
			return fmt.Errorf("s.events.CountByStatus -> %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return DashboardStats{}, err
	}

	return stats, nil
}
