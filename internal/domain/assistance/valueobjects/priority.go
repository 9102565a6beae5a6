package valueobjects

import "fmt"

// Priority is the urgency classification of an assistance ticket.
type Priority string

const (
	PriorityNormal    Priority = "normal"
	PriorityUrgent    Priority = "urgente"
	PriorityEmergency Priority = "emergencia"
)

var validPriorities = map[Priority]bool{
	PriorityNormal:    true,
	PriorityUrgent:    true,
	PriorityEmergency: true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func (p Priority) IsEmergency() bool {
	return p == PriorityEmergency
}

func NewPriority(raw string) (Priority, error) {
	p := Priority(raw)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", raw)
	}
	return p, nil
}
