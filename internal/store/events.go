package store

import (
	"context"
	"time"

	"solidaria/pkg/types"

	"github.com/sirupsen/logrus"
)

// RegisterEvent records a solidarity event, default status PLANNED. When a
// known publication is referenced, its title is denormalized onto the event
// for display.
func (s *Store) RegisterEvent(ctx context.Context, in types.RegisterEventInput) (*types.SolidarityEvent, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	id := nextID(state.Events, func(e types.SolidarityEvent) int { return e.ID })

	event := types.SolidarityEvent{
		ID:               id,
		Name:             in.Name,
		PublicationID:    in.PublicationID,
		PublicationTitle: in.PublicationTitle,
		Type:             in.Type,
		Date:             in.Date,
		Venue:            in.Venue,
		FundraisingGoal:  in.FundraisingGoal,
		OutreachChannel:  in.OutreachChannel,
		Status:           in.Status,
		Description:      in.Description,
	}
	if event.Type == "" {
		event.Type = "OTHER"
	}
	if event.Date == "" {
		event.Date = time.Now().UTC().Format(time.RFC3339)
	}
	if event.Status == "" {
		event.Status = types.EventStatusPlanned
	}
	if pub := findPublication(state, in.PublicationID); pub != nil {
		event.PublicationTitle = pub.Title
	}

	state.Events = append(state.Events, event)

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id": event.ID,
		"name":     event.Name,
	}).Info("solidarity event registered")

	return &event, nil
}

func (s *Store) ListEvents(ctx context.Context, status types.EventStatus) ([]types.SolidarityEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	if status == "" {
		return state.Events, nil
	}

	out := make([]types.SolidarityEvent, 0, len(state.Events))
	for _, event := range state.Events {
		if event.Status == status {
			out = append(out, event)
		}
	}
	return out, nil
}
