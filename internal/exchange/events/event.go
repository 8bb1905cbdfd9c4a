package events

import "time"

type Kind string

const (
	KindRequestCreated   Kind = "REQUEST_CREATED"
	KindRequestAccepted  Kind = "REQUEST_ACCEPTED"
	KindRequestRejected  Kind = "REQUEST_REJECTED"
	KindItemLent         Kind = "ITEM_LENT"
	KindReceiptConfirmed Kind = "RECEIPT_CONFIRMED"
	KindRequestDone      Kind = "REQUEST_DONE"
	KindReturnConfirmed  Kind = "RETURN_CONFIRMED"
	KindReturnCompleted  Kind = "RETURN_COMPLETED"
	KindMessageSent      Kind = "MESSAGE_SENT"
)

// Event は下流（アーカイブ・通知など）向けのライフサイクルイベント
type Event struct {
	EventID     string    `json:"event_id"`
	Kind        Kind      `json:"kind"`
	RequestID   string    `json:"request_id"`
	ItemID      string    `json:"item_id"`
	OwnerID     string    `json:"owner_id"`
	RequesterID string    `json:"requester_id"`
	ActorID     string    `json:"actor_id"`
	Status      string    `json:"status"`
	MessageID   string    `json:"message_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
