package testutils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicUUID(t *testing.T) {
	ResetTestCounters()

	first := DeterministicUUID()
	second := DeterministicUUID()

	assert.Equal(t, "00000001-0000-4000-8000-000000000001", first)
	assert.Equal(t, "00000002-0000-4000-8000-000000000002", second)
	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	ResetTestCounters()
	assert.Equal(t, first, DeterministicUUID())
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Pending()
	r.Add("value")
	r.Failed()

	assert.Equal(t, []string{EventPending, "value", EventFailed}, r.Events())
}

func TestFakeHost(t *testing.T) {
	h := NewFakeHost("a", "b")
	var seen []string

	require.NoError(t, h.PushHistory("old"))
	h.Run(func(line string) { seen = append(seen, line) })
	h.Close()

	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, []string{"old"}, h.Pushed())
	assert.Equal(t, 1, h.Closed())
	assert.Nil(t, h.ProgressBar())
}
