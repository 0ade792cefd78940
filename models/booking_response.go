package models

// BookingView is a booking joined with its references for API responses.
// The legacy wire contract exposes approval as two booleans; they are derived
// from the status enum here.
type BookingView struct {
	Booking    `bson:",inline"`
	IsApproved bool       `bson:"-" json:"is_approved"`
	IsRejected bool       `bson:"-" json:"is_rejected"`
	User       *User      `bson:"user,omitempty" json:"User,omitempty"`
	Product    *Product   `bson:"product,omitempty" json:"Product,omitempty"`
	LineItems  []LineItem `bson:"line_items,omitempty" json:"line_items,omitempty"`
	EventTypes []EventType `bson:"event_types,omitempty" json:"event_types,omitempty"`
}

// NewBookingView derives the legacy boolean flags from the status enum.
func NewBookingView(b Booking) BookingView {
	return BookingView{
		Booking:    b,
		IsApproved: b.IsApproved(),
		IsRejected: b.IsRejected(),
	}
}

// MonthlyBookingStat is one month's bucket in the 12-month dashboard series.
type MonthlyBookingStat struct {
	Month       string `json:"month"`
	Approved    int    `json:"approved"`
	NotApproved int    `json:"notApproved"`
}

// PageQuery carries the list-endpoint query params shared across entities.
type PageQuery struct {
	Search string
	Page   int
	Limit  int
}

// Normalize applies the legacy defaults (page 1, limit 10).
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	return q
}

// Skip returns the number of records the page offset skips over.
func (q PageQuery) Skip() int64 {
	return int64((q.Page - 1) * q.Limit)
}

// TotalPages computes the page count for a result set of totalCount records.
func (q PageQuery) TotalPages(totalCount int64) int64 {
	limit := int64(q.Limit)
	return (totalCount + limit - 1) / limit
}
