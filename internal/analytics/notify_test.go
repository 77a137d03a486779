package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierCallbacks(t *testing.T) {
	n := NewNotifier(zerolog.Nop())

	var received []Notification
	n.AddCallback(func(notification Notification) {
		received = append(received, notification)
	})

	n.Send("Test Alert", "something happened", LevelWarning)

	require.Len(t, received, 1)
	assert.Equal(t, "Test Alert", received[0].Title)
	assert.Equal(t, "something happened", received[0].Message)
	assert.Equal(t, LevelWarning, received[0].Level)
	assert.False(t, received[0].Timestamp.IsZero())
}

func TestCheckErrorRate(t *testing.T) {
	n := NewNotifier(zerolog.Nop())

	// Below the sample-size floor nothing fires, whatever the rate.
	r := NewRecorder()
	for i := 0; i < 5; i++ {
		r.Record(Interaction{UserMessage: "q", Provider: "none", Err: fmt.Errorf("boom")})
	}
	assert.False(t, n.CheckErrorRate(r))

	// 3 errors out of 12 is above 10%.
	r = NewRecorder()
	for i := 0; i < 9; i++ {
		r.Record(Interaction{UserMessage: "q", Provider: "openai"})
	}
	for i := 0; i < 3; i++ {
		r.Record(Interaction{UserMessage: "q", Provider: "none", Err: fmt.Errorf("boom")})
	}
	assert.True(t, n.CheckErrorRate(r))

	// 1 error out of 12 is below 10%.
	r = NewRecorder()
	for i := 0; i < 11; i++ {
		r.Record(Interaction{UserMessage: "q", Provider: "openai"})
	}
	r.Record(Interaction{UserMessage: "q", Provider: "none", Err: fmt.Errorf("boom")})
	assert.False(t, n.CheckErrorRate(r))
}

func TestCheckResponseTime(t *testing.T) {
	n := NewNotifier(zerolog.Nop())

	r := NewRecorder()
	r.Record(Interaction{UserMessage: "q", Provider: "openai", Duration: time.Second})
	assert.False(t, n.CheckResponseTime(r))

	r.Record(Interaction{UserMessage: "q", Provider: "openai", Duration: 12 * time.Second})
	assert.True(t, n.CheckResponseTime(r))
}
