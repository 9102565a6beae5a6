package usecases

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "zelo/internal/domain/assistance/valueobjects"
	"zelo/internal/shared/errors"
)

func TestBuildPayloadAccept(t *testing.T) {
	payload, err := buildPayload(vo.ActionAccept, ActionData{})
	require.NoError(t, err)
	accept, ok := payload.(acceptPayload)
	require.True(t, ok)
	assert.Nil(t, accept.scheduledAt)

	payload, err = buildPayload(vo.ActionAccept, ActionData{Datetime: "2026-09-10T14:30:00Z"})
	require.NoError(t, err)
	accept = payload.(acceptPayload)
	require.NotNil(t, accept.scheduledAt)
	assert.Equal(t, 2026, accept.scheduledAt.Year())

	_, err = buildPayload(vo.ActionAccept, ActionData{Datetime: "10/09/2026 14:30"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestBuildPayloadRejectRequiresReason(t *testing.T) {
	_, err := buildPayload(vo.ActionReject, ActionData{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = buildPayload(vo.ActionReject, ActionData{Reason: "   "})
	require.Error(t, err)

	payload, err := buildPayload(vo.ActionReject, ActionData{Reason: "Fora da área de atuação"})
	require.NoError(t, err)
	assert.Equal(t, "Fora da área de atuação", payload.(rejectPayload).reason)
}

func TestBuildPayloadScheduleRequiresDatetime(t *testing.T) {
	_, err := buildPayload(vo.ActionSchedule, ActionData{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	payload, err := buildPayload(vo.ActionSchedule, ActionData{Datetime: "2026-09-10T09:00:00+01:00"})
	require.NoError(t, err)
	schedule := payload.(schedulePayload)
	assert.Equal(t, time.September, schedule.scheduledAt.Month())
}

func TestBuildPayloadReschedule(t *testing.T) {
	_, err := buildPayload(vo.ActionReschedule, ActionData{Reason: "Peça em falta"})
	require.Error(t, err)

	payload, err := buildPayload(vo.ActionReschedule, ActionData{
		Datetime: "2026-09-12T09:00:00Z",
		Reason:   "Peça em falta",
	})
	require.NoError(t, err)
	reschedule := payload.(reschedulePayload)
	assert.Equal(t, "Peça em falta", reschedule.reason)
}

func TestBuildPayloadCompletePhotoOptional(t *testing.T) {
	payload, err := buildPayload(vo.ActionComplete, ActionData{})
	require.NoError(t, err)
	assert.Nil(t, payload.(completePayload).photo)
}

func TestDecodePhoto(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))

	photo, err := decodePhoto(raw, "")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), photo.content)
	assert.Equal(t, vo.PhotoCategoryResult, photo.category)

	photo, err = decodePhoto("data:image/jpeg;base64,"+raw, "progresso")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), photo.content)
	assert.Equal(t, vo.PhotoCategoryProgress, photo.category)
}

func TestDecodePhotoRejectsBadInput(t *testing.T) {
	_, err := decodePhoto("not base64 at all!!!", "")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = decodePhoto("", "")
	require.Error(t, err)

	raw := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))
	_, err = decodePhoto(raw, "selfie")
	require.Error(t, err)
}

func TestDecodePhotoEnforcesSizeLimit(t *testing.T) {
	oversized := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", maxPhotoBytes+1)))

	_, err := decodePhoto(oversized, "")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
