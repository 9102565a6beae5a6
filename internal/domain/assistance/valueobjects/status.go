package valueobjects

import "fmt"

// Status is the lifecycle state of an assistance ticket. The stored values
// are the canonical pt-PT labels the backing store enumerates.
type Status string

const (
	StatusPendingInitialResponse Status = "Pendente Resposta Inicial"
	StatusPendingAcceptance      Status = "Pendente Aceitação"
	StatusPendingScheduling      Status = "Pendente Agendamento"
	StatusScheduled              Status = "Agendado"
	StatusInProgress             Status = "Em Progresso"
	StatusPendingValidation      Status = "Pendente Validação"
	StatusValidationExpired      Status = "Validação Expirada"
	StatusRescheduleRequested    Status = "Reagendamento Solicitado"
	StatusDeclinedBySupplier     Status = "Recusada Fornecedor"
	StatusCompleted              Status = "Concluído"
	StatusCancelled              Status = "Cancelado"
)

var validStatuses = map[Status]bool{
	StatusPendingInitialResponse: true,
	StatusPendingAcceptance:      true,
	StatusPendingScheduling:      true,
	StatusScheduled:              true,
	StatusInProgress:             true,
	StatusPendingValidation:      true,
	StatusValidationExpired:      true,
	StatusRescheduleRequested:    true,
	StatusDeclinedBySupplier:     true,
	StatusCompleted:              true,
	StatusCancelled:              true,
}

// statusTransitions is the single source of truth for legal status edges.
// A status change whose target is not listed for the current status must be
// rejected as invalid_transition, never coerced.
var statusTransitions = map[Status][]Status{
	StatusPendingInitialResponse: {
		StatusPendingAcceptance,
		StatusCancelled,
	},
	StatusPendingAcceptance: {
		StatusPendingScheduling,
		StatusDeclinedBySupplier,
		StatusCancelled,
	},
	StatusPendingScheduling: {
		StatusScheduled,
		StatusCancelled,
		StatusDeclinedBySupplier,
	},
	StatusScheduled: {
		StatusInProgress,
		StatusRescheduleRequested,
		StatusCancelled,
	},
	StatusInProgress: {
		StatusPendingValidation,
		StatusCancelled,
	},
	StatusPendingValidation: {
		StatusCompleted,
		StatusValidationExpired,
		StatusCancelled,
	},
	StatusValidationExpired: {
		StatusPendingValidation,
		StatusCompleted,
		StatusCancelled,
	},
	StatusRescheduleRequested: {
		StatusScheduled,
		StatusCancelled,
	},
	StatusDeclinedBySupplier: {
		StatusPendingAcceptance,
		StatusCancelled,
	},
	StatusCompleted: {
		StatusCancelled,
	},
	StatusCancelled: {
		StatusPendingInitialResponse,
		StatusPendingAcceptance,
	},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// CanTransitionTo reports whether target is a declared edge of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// PathTo returns the shortest declared-edge path from s to target, excluding
// s itself, or nil if no path of at most two hops exists. Supplier actions
// like accept-with-datetime advance through intermediate states
// (Pendente Aceitação → Pendente Agendamento → Agendado); every hop must be
// a declared edge so the transition table stays authoritative.
func (s Status) PathTo(target Status) []Status {
	if s.CanTransitionTo(target) {
		return []Status{target}
	}
	for _, mid := range statusTransitions[s] {
		if mid.CanTransitionTo(target) {
			return []Status{mid, target}
		}
	}
	return nil
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) IsScheduled() bool {
	return s == StatusScheduled
}

func (s Status) IsPendingScheduling() bool {
	return s == StatusPendingScheduling
}

func (s Status) IsPendingValidation() bool {
	return s == StatusPendingValidation
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}

func NewStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid assistance status: %s", raw)
	}
	return s, nil
}
