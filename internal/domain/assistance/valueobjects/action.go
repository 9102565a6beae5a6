package valueobjects

import "fmt"

// Action is a supplier portal operation requested against a ticket.
type Action string

const (
	// Write actions (POST submit-supplier-action).
	ActionAccept     Action = "accept"
	ActionReject     Action = "reject"
	ActionSchedule   Action = "schedule"
	ActionReschedule Action = "reschedule"
	ActionComplete   Action = "complete"

	// Read actions (GET supplier-route). ActionAccept and ActionSchedule
	// double as read actions when the supplier opens the emailed link.
	ActionValidate Action = "validate"
	ActionView     Action = "view"
	ActionPortal   Action = "portal"
)

var writeActions = map[Action]bool{
	ActionAccept:     true,
	ActionReject:     true,
	ActionSchedule:   true,
	ActionReschedule: true,
	ActionComplete:   true,
}

var readActions = map[Action]bool{
	ActionAccept:   true,
	ActionSchedule: true,
	ActionValidate: true,
	ActionView:     true,
	ActionPortal:   true,
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsWrite() bool {
	return writeActions[a]
}

func (a Action) IsRead() bool {
	return readActions[a]
}

// TokenScope names the capability token column legitimizing an action class.
type TokenScope string

const (
	ScopeAcceptance TokenScope = "acceptance"
	ScopeScheduling TokenScope = "scheduling"
	ScopeValidation TokenScope = "validation"
	// ScopeAny matches any of the three columns; only portal-wide read
	// actions carry it.
	ScopeAny TokenScope = "any"
)

// Scope returns the token scope an action requires. A token never
// legitimizes more than one action class.
func (a Action) Scope() (TokenScope, error) {
	switch a {
	case ActionAccept, ActionReject:
		return ScopeAcceptance, nil
	case ActionSchedule, ActionReschedule:
		return ScopeScheduling, nil
	case ActionComplete, ActionValidate:
		return ScopeValidation, nil
	case ActionView, ActionPortal:
		return ScopeAny, nil
	default:
		return "", fmt.Errorf("unknown action: %s", a)
	}
}

func NewWriteAction(raw string) (Action, error) {
	a := Action(raw)
	if !a.IsWrite() {
		return "", fmt.Errorf("invalid action: %s", raw)
	}
	return a, nil
}

func NewReadAction(raw string) (Action, error) {
	a := Action(raw)
	if !a.IsRead() {
		return "", fmt.Errorf("invalid action: %s", raw)
	}
	return a, nil
}
