package domain

import (
	"strings"
	"time"
)

// ResourceStatus represents the review state of a directory entry.
type ResourceStatus string

const (
	StatusPending  ResourceStatus = "pending"
	StatusApproved ResourceStatus = "approved"
	StatusRejected ResourceStatus = "rejected"
)

// ParseStatus normalises a raw status string.
func ParseStatus(s string) (ResourceStatus, error) {
	switch ResourceStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	}
	return "", &ValidationError{Field: "status", Message: "status must be one of: pending, approved, rejected"}
}

// Categories is the fixed set of resource categories the directory knows.
// CategoryAll is a filter sentinel, never a stored value.
const CategoryAll = "ALL"

var Categories = []string{"ACADEMIC", "HEALTH", "ADMINISTRATIVE", "STUDENT LIFE"}

// ValidCategory reports whether c names a known category (case-insensitive).
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if strings.EqualFold(c, known) {
			return true
		}
	}
	return false
}

// Resource is a support/service entry in the directory. The authoritative
// copy lives in the external store; anything held here is a read-through
// snapshot refreshed after every mutation.
type Resource struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Description     string         `json:"description"`
	OfferedBy       string         `json:"offered_by"`
	Location        string         `json:"location,omitempty"`
	Link            string         `json:"link,omitempty"`
	Status          ResourceStatus `json:"status"`
	SuggestedBy     string         `json:"suggested_by,omitempty"`
	SuggestedAt     *time.Time     `json:"suggested_at,omitempty"`
	ReviewedBy      string         `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
}

// ReviewDecision is an ephemeral admin decision on a pending resource.
// A reason is mandatory when rejecting.
type ReviewDecision struct {
	ResourceID string
	Status     ResourceStatus
	Reason     string
}

// Validate enforces the review invariants before any network call is issued.
func (d ReviewDecision) Validate() error {
	if d.ResourceID == "" {
		return &ValidationError{Field: "resource_id", Message: "resource id is required"}
	}
	switch d.Status {
	case StatusApproved:
		return nil
	case StatusRejected:
		if strings.TrimSpace(d.Reason) == "" {
			return &ValidationError{Field: "rejection_reason", Message: "a reason is required when rejecting a resource"}
		}
		return nil
	}
	return &ValidationError{Field: "status", Message: "review status must be approved or rejected"}
}
