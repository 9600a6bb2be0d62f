package entity

import (
	"time"

	"github.com/google/uuid"
)

// BulkOrderStatus represents the review state of a bulk order request.
type BulkOrderStatus string

const (
	// BulkOrderStatusReceived indicates a request not yet looked at.
	BulkOrderStatusReceived BulkOrderStatus = "received"
	// BulkOrderStatusReviewing indicates a request being assessed.
	BulkOrderStatusReviewing BulkOrderStatus = "reviewing"
	// BulkOrderStatusQuoted indicates a quote has been sent to the requester.
	BulkOrderStatusQuoted BulkOrderStatus = "quoted"
	// BulkOrderStatusClosed indicates the request is settled either way.
	BulkOrderStatusClosed BulkOrderStatus = "closed"
)

// IsValid checks if the BulkOrderStatus is a valid value.
func (s BulkOrderStatus) IsValid() bool {
	switch s {
	case BulkOrderStatusReceived, BulkOrderStatusReviewing, BulkOrderStatusQuoted, BulkOrderStatusClosed:
		return true
	default:
		return false
	}
}

// BulkOrderRequest is a wholesale enquiry submitted by a customer,
// handled out-of-band by the back office.
type BulkOrderRequest struct {
	ID               uuid.UUID       // The unique identifier for the request.
	UserID           uuid.UUID       // The customer who submitted the request.
	CompanyName      string          // The requesting company.
	ContactPhone     string          // Contact number, exactly 10 digits.
	Details          string          // Free-form description of the requested goods.
	QuantityEstimate int             // Rough unit count the requester has in mind.
	Status           BulkOrderStatus // Review state.
	CreatedAt        time.Time       // Timestamp of when this request was submitted.
	UpdatedAt        time.Time       // Timestamp of the last modification.
}
