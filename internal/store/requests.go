package store

import (
	"context"
	"fmt"
	"time"

	"solidaria/pkg/types"

	"github.com/sirupsen/logrus"
)

// SubmitRequest records a new aid request as PENDING and assigns it the
// next id and code. Evidence references arrive pre-resolved; the store
// never inspects file content.
func (s *Store) SubmitRequest(ctx context.Context, in types.SubmitRequestInput) (*types.AidRequest, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	id := nextID(state.Requests, func(r types.AidRequest) int { return r.ID })
	now := time.Now().UTC()

	urgency := in.Urgency
	if urgency == "" {
		urgency = types.UrgencyLow
	}

	evidence := make([]string, 0, len(in.Evidence))
	evidence = append(evidence, in.Evidence...)

	req := types.AidRequest{
		ID:                 id,
		Code:               fmt.Sprintf("S-%04d", id),
		Title:              in.Title,
		Description:        in.Description,
		ResourceType:       in.ResourceType,
		Category:           in.Category,
		Urgency:            urgency,
		BeneficiaryName:    in.BeneficiaryName,
		BeneficiaryType:    in.BeneficiaryType,
		BeneficiaryContact: in.BeneficiaryContact,
		RequestedAmount:    in.RequestedAmount,
		Status:             types.RequestStatusPending,
		Evidence:           evidence,
		CreatedAt:          now,
	}
	state.Requests = append(state.Requests, req)

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"request_id": req.ID,
		"code":       req.Code,
	}).Info("aid request submitted")

	return &req, nil
}

// ListRequests returns requests in insertion order, optionally filtered by
// status.
func (s *Store) ListRequests(ctx context.Context, status types.RequestStatus) ([]types.AidRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	if status == "" {
		return state.Requests, nil
	}

	out := make([]types.AidRequest, 0, len(state.Requests))
	for _, req := range state.Requests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (s *Store) GetRequest(ctx context.Context, id int) (*types.AidRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	req := findRequest(state, id)
	if req == nil {
		return nil, types.ErrRequestNotFound
	}

	out := *req
	return &out, nil
}

// ChangeRequestStatus reviews a PENDING request. Approval atomically
// creates exactly one publication copied from the request; rejection may
// record the reviewer's comment as the rejection reason. Both outcomes are
// terminal.
func (s *Store) ChangeRequestStatus(ctx context.Context, id int, in types.ReviewRequestInput) (*types.AidRequest, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	req := findRequest(state, id)
	if req == nil {
		return nil, types.ErrRequestNotFound
	}

	if req.Status != types.RequestStatusPending {
		return nil, types.ErrRequestAlreadyReviewed
	}

	req.Status = in.Status
	if in.Status == types.RequestStatusRejected && in.Comment != "" {
		comment := in.Comment
		req.RejectionReason = &comment
	}

	if in.Status == types.RequestStatusApproved {
		pubID := nextID(state.Publications, func(p types.Publication) int { return p.ID })
		pub := types.Publication{
			ID:              pubID,
			RequestCode:     req.Code,
			Title:           req.Title,
			ResourceType:    req.ResourceType,
			BeneficiaryName: req.BeneficiaryName,
			Urgency:         req.Urgency,
			PublishedAt:     time.Now().UTC(),
			Description:     req.Description,
			Evidence:        req.Evidence,
			TotalDonated:    0,
			Donations:       []types.Donation{},
		}
		state.Publications = append(state.Publications, pub)

		s.logger.WithFields(logrus.Fields{
			"request_id":     req.ID,
			"publication_id": pub.ID,
		}).Info("request approved, publication created")
	}

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	out := *req
	return &out, nil
}

func findRequest(state *types.State, id int) *types.AidRequest {
	for i := range state.Requests {
		if state.Requests[i].ID == id {
			return &state.Requests[i]
		}
	}
	return nil
}
