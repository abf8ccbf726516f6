package events

import "time"

const DocumentGeneratedTopic = "office.document.generated.v1"

// DocumentGeneratedEvent is emitted after an invoice or payslip PDF has been
// produced and its record persisted.
type DocumentGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	Kind        string    `json:"kind"` // "invoice" | "payslip"
	DocumentID  string    `json:"document_id"`
	EntityKey   string    `json:"entity_key,omitempty"` // invoice business entity
	FileName    string    `json:"file_name"`
	GeneratedBy string    `json:"generated_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
