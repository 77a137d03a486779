package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationStoreLifecycle(t *testing.T) {
	store := NewConversationStore()

	conv := store.Create("conv-1")
	require.NotNil(t, conv)
	assert.Equal(t, "conv-1", conv.ID)
	assert.Empty(t, conv.Messages)

	messages := []Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}
	store.Update("conv-1", messages)

	got := store.Get("conv-1")
	require.NotNil(t, got)
	assert.Equal(t, messages, got.Messages)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))

	store.Delete("conv-1")
	assert.Nil(t, store.Get("conv-1"))
}

func TestConversationStoreGetMissing(t *testing.T) {
	store := NewConversationStore()
	assert.Nil(t, store.Get("nope"))
}

func TestConversationStoreUpdateMissingIsNoop(t *testing.T) {
	store := NewConversationStore()
	store.Update("nope", []Message{{Role: "user", Content: "hi"}})
	assert.Nil(t, store.Get("nope"))
}

func TestConversationStoreCleanup(t *testing.T) {
	store := NewConversationStore()

	stale := store.Create("stale")
	stale.UpdatedAt = time.Now().Add(-2 * time.Hour)

	store.Create("fresh")

	store.Cleanup(time.Hour)

	assert.Nil(t, store.Get("stale"))
	assert.NotNil(t, store.Get("fresh"))
}
