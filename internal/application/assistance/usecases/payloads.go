package usecases

import (
	"encoding/base64"
	"strings"
	"time"

	vo "zelo/internal/domain/assistance/valueobjects"
	"zelo/internal/shared/errors"
)

// ActionData is the loose payload shape accepted on the wire. It is narrowed
// into a per-action typed payload before anything touches the ticket.
type ActionData struct {
	Datetime      string `json:"datetime,omitempty"`
	Reason        string `json:"reason,omitempty"`
	PhotoBase64   string `json:"photoBase64,omitempty"`
	PhotoCategory string `json:"photoCategory,omitempty"`
}

type actionPayload interface {
	isActionPayload()
}

type acceptPayload struct {
	scheduledAt *time.Time
}

type rejectPayload struct {
	reason string
}

type schedulePayload struct {
	scheduledAt time.Time
}

type reschedulePayload struct {
	scheduledAt time.Time
	reason      string
}

type completePayload struct {
	photo *photoUpload
}

type photoUpload struct {
	content  []byte
	category vo.PhotoCategory
}

func (acceptPayload) isActionPayload()     {}
func (rejectPayload) isActionPayload()     {}
func (schedulePayload) isActionPayload()   {}
func (reschedulePayload) isActionPayload() {}
func (completePayload) isActionPayload()   {}

const (
	maxPhotoBytes  = 10 << 20
	photoURLExpiry = 7 * 24 * time.Hour
)

// buildPayload validates the wire data against what the action requires and
// returns its typed payload.
func buildPayload(action vo.Action, data ActionData) (actionPayload, error) {
	switch action {
	case vo.ActionAccept:
		if data.Datetime == "" {
			return acceptPayload{}, nil
		}
		at, err := parseDatetime(data.Datetime)
		if err != nil {
			return nil, err
		}
		return acceptPayload{scheduledAt: &at}, nil

	case vo.ActionReject:
		if strings.TrimSpace(data.Reason) == "" {
			return nil, errors.NewValidationError("motivo de recusa é obrigatório")
		}
		return rejectPayload{reason: data.Reason}, nil

	case vo.ActionSchedule:
		at, err := requireDatetime(data.Datetime)
		if err != nil {
			return nil, err
		}
		return schedulePayload{scheduledAt: at}, nil

	case vo.ActionReschedule:
		at, err := requireDatetime(data.Datetime)
		if err != nil {
			return nil, err
		}
		return reschedulePayload{scheduledAt: at, reason: data.Reason}, nil

	case vo.ActionComplete:
		if data.PhotoBase64 == "" {
			return completePayload{}, nil
		}
		photo, err := decodePhoto(data.PhotoBase64, data.PhotoCategory)
		if err != nil {
			return nil, err
		}
		return completePayload{photo: photo}, nil

	default:
		return nil, errors.NewValidationError("ação inválida")
	}
}

func requireDatetime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.NewValidationError("data e hora são obrigatórias")
	}
	return parseDatetime(raw)
}

func parseDatetime(raw string) (time.Time, error) {
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.NewValidationError("formato de data inválido")
	}
	return at, nil
}

func decodePhoto(encoded, rawCategory string) (*photoUpload, error) {
	// Tolerate data-URI prefixes produced by browser uploads.
	if idx := strings.Index(encoded, ","); idx != -1 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[idx+1:]
	}

	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.NewValidationError("fotografia inválida")
	}
	if len(content) == 0 {
		return nil, errors.NewValidationError("fotografia vazia")
	}
	if len(content) > maxPhotoBytes {
		return nil, errors.NewValidationError("fotografia excede o tamanho máximo")
	}

	category := vo.PhotoCategoryResult
	if rawCategory != "" {
		category, err = vo.NewPhotoCategory(rawCategory)
		if err != nil {
			return nil, errors.NewValidationError("categoria de fotografia inválida")
		}
	}

	return &photoUpload{content: content, category: category}, nil
}
