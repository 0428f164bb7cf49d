package services

import "work-arrangement-api/models"

// CreationPolicy decides the status a newly created request enters. New
// fast-path roles plug in here without touching the state machine.
type CreationPolicy interface {
	InitialStatus() string
}

// StandardApproval routes new requests through manager review.
type StandardApproval struct{}

func (StandardApproval) InitialStatus() string { return models.StatusPending }

// AutoApproved creates requests directly in Approved state, skipping
// manager review.
type AutoApproved struct{}

func (AutoApproved) InitialStatus() string { return models.StatusApproved }

// CreationPolicyFor resolves the policy from the submitting staff's
// position attribute.
func CreationPolicyFor(staff *models.Staff) CreationPolicy {
	if staff.IsAutoApproved() {
		return AutoApproved{}
	}
	return StandardApproval{}
}
