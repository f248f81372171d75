package order

import (
	"time"

	"github.com/google/uuid"
)

// Status enumerates the lifecycle of an order.
type Status string

const (
	StatusPending   Status = "pending"   // submitted, awaiting the branch
	StatusConfirmed Status = "confirmed" // branch accepted
	StatusReady     Status = "ready"     // ready for pickup / handoff
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

type (
	// CartItem is one line of a cart. All money is in minor units.
	CartItem struct {
		ItemID         string `json:"item_id" validate:"required"`
		Name           string `json:"name" validate:"required"`
		UnitPriceCents int64  `json:"unit_price_cents" validate:"min=0"`
		Quantity       int    `json:"quantity" validate:"min=1"`
	}

	// Summary is the order-total breakdown shown on the review screen and
	// recomputed server-side on submission.
	Summary struct {
		SubtotalCents      int64 `json:"subtotal_cents"`
		ServiceChargeCents int64 `json:"service_charge_cents"`
		DeliveryFeeCents   int64 `json:"delivery_fee_cents"`
		TotalCents         int64 `json:"total_cents"`
		ItemCount          int   `json:"item_count"`
	}

	// Rates parameterizes the summary arithmetic.
	Rates struct {
		ServiceChargeBps      int
		DeliveryFeeCents      int64
		FreeDeliveryOverCents int64
	}

	Order struct {
		ID        uuid.UUID  `json:"id"`
		UserID    uuid.UUID  `json:"user_id"`
		BranchID  string     `json:"branch_id"`
		Status    Status     `json:"status"`
		Items     []CartItem `json:"items"`
		Summary   Summary    `json:"summary"`
		CreatedAt time.Time  `json:"created_at"`
		UpdatedAt time.Time  `json:"updated_at"`
	}

	SubmitOrderIn struct {
		Items []CartItem `json:"items" validate:"required,min=1,dive"`
	}

	QuoteIn struct {
		Items []CartItem `json:"items" validate:"dive"`
	}

	SubmitOrderOut struct {
		ID      string  `json:"id"`
		Status  Status  `json:"status"`
		Summary Summary `json:"summary"`
	}
)
