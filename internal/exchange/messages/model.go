package messages

import "time"

// Message は messages テーブルの1行を表す
type Message struct {
	ID         string
	RequestID  string
	SenderID   string
	ReceiverID string
	Content    string
	SentAt     time.Time
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type MessageResponse struct {
	MessageID  string    `json:"message_id"`
	RequestID  string    `json:"request_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
}

type ListResult struct {
	Items      []MessageResponse `json:"items"`
	Total      int64             `json:"total"`
	NextOffset *int              `json:"next_offset,omitempty"`
}

func toResponse(m Message) MessageResponse {
	return MessageResponse{
		MessageID:  m.ID,
		RequestID:  m.RequestID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		SentAt:     m.SentAt,
	}
}
