package domain

import "time"

// ChangeOp is the kind of database change a ChangeEvent describes.
type ChangeOp string

const (
	ChangeInsert ChangeOp = "INSERT"
	ChangeUpdate ChangeOp = "UPDATE"
	ChangeDelete ChangeOp = "DELETE"
)

// ChangeEvent is emitted by services after a successful write so realtime
// subscribers (kitchen displays, admin dashboards) can react without polling.
type ChangeEvent struct {
	Table        string    `json:"table"` // e.g. "orders", "cash_movements"
	Op           ChangeOp  `json:"op"`
	RestaurantID string    `json:"restaurantID"`
	RecordID     string    `json:"recordID"`
	Payload      any       `json:"payload,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NotificationKind identifies the template a notification event should render.
type NotificationKind string

const (
	NotifyOrderPaid            NotificationKind = "order.paid"
	NotifyOrderReady           NotificationKind = "order.ready"
	NotifyReservationConfirmed NotificationKind = "reservation.confirmed"
)

// NotificationEvent is published to the message broker for asynchronous
// WhatsApp delivery. It carries everything the worker needs so it never has to
// query the primary database.
type NotificationEvent struct {
	Kind          NotificationKind `json:"kind"`
	RestaurantID  string           `json:"restaurantID"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	OrderID       string           `json:"orderID,omitempty"`
	ReservationID string           `json:"reservationID,omitempty"`
	Amount        string           `json:"amount,omitempty"` // Decimal string, display only
	PointsEarned  int64            `json:"pointsEarned,omitempty"`
	OccurredAt    time.Time        `json:"occurredAt"`
}
