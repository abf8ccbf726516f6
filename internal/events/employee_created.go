package events

import "time"

const EmployeeCreatedTopic = "office.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}
