package conversation_test

import (
	"fmt"
	"testing"

	"orderchat/internal/core/application/conversation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_NewUserStartsWithSystemPreamble(t *testing.T) {
	store, err := conversation.NewStore(10)
	require.NoError(t, err)

	history := store.History("user-1")
	require.Len(t, history, 1)
	assert.Equal(t, conversation.RoleSystem, history[0].Role)
	assert.NotEmpty(t, history[0].Content)
}

func TestStore_AppendKeepsOrder(t *testing.T) {
	store, err := conversation.NewStore(10)
	require.NoError(t, err)

	store.Append("user-1",
		conversation.Message{Role: conversation.RoleUser, Content: "create an order for bread"},
		conversation.Message{Role: conversation.RoleAssistant, Content: "Order created."},
	)
	store.Append("user-1", conversation.Message{Role: conversation.RoleUser, Content: "track order ORD-ABC123"})

	history := store.History("user-1")
	require.Len(t, history, 4)
	assert.Equal(t, conversation.RoleSystem, history[0].Role)
	assert.Equal(t, "create an order for bread", history[1].Content)
	assert.Equal(t, "Order created.", history[2].Content)
	assert.Equal(t, "track order ORD-ABC123", history[3].Content)
}

func TestStore_RecentCapsAtLimitButHistoryGrows(t *testing.T) {
	store, err := conversation.NewStore(10)
	require.NoError(t, err)

	for i := range 20 {
		store.Append("user-1", conversation.Message{
			Role:    conversation.RoleUser,
			Content: fmt.Sprintf("message %d", i),
		})
	}

	// Preamble plus all twenty messages stay stored.
	assert.Len(t, store.History("user-1"), 21)

	recent := store.Recent("user-1")
	require.Len(t, recent, conversation.RecentMessageLimit)
	assert.Equal(t, "message 12", recent[0].Content)
	assert.Equal(t, "message 19", recent[len(recent)-1].Content)
}

func TestStore_RecentForNewUserIsJustThePreamble(t *testing.T) {
	store, err := conversation.NewStore(10)
	require.NoError(t, err)

	recent := store.Recent("user-1")
	require.Len(t, recent, 1)
	assert.Equal(t, conversation.RoleSystem, recent[0].Role)
}

func TestStore_UsersAreIsolated(t *testing.T) {
	store, err := conversation.NewStore(10)
	require.NoError(t, err)

	store.Append("user-1", conversation.Message{Role: conversation.RoleUser, Content: "from one"})
	store.Append("user-2", conversation.Message{Role: conversation.RoleUser, Content: "from two"})

	assert.Equal(t, "from one", store.History("user-1")[1].Content)
	assert.Equal(t, "from two", store.History("user-2")[1].Content)
}

func TestStore_EvictsLeastRecentlyActiveUser(t *testing.T) {
	store, err := conversation.NewStore(2)
	require.NoError(t, err)

	store.Append("user-1", conversation.Message{Role: conversation.RoleUser, Content: "one"})
	store.Append("user-2", conversation.Message{Role: conversation.RoleUser, Content: "two"})

	// user-1 is now the coldest entry; a third user pushes it out.
	store.Append("user-3", conversation.Message{Role: conversation.RoleUser, Content: "three"})
	assert.Equal(t, 2, store.Len())

	// The evicted user starts over with a fresh preamble.
	history := store.History("user-1")
	require.Len(t, history, 1)
	assert.Equal(t, conversation.RoleSystem, history[0].Role)
}

func TestStore_FunctionRoleKeepsName(t *testing.T) {
	store, err := conversation.NewStore(10)
	require.NoError(t, err)

	store.Append("user-1", conversation.Message{
		Role:    conversation.RoleFunction,
		Name:    "track_order",
		Content: `{"status":"shipped"}`,
	})

	history := store.History("user-1")
	assert.Equal(t, "track_order", history[1].Name)
}

func TestNewStore_NonPositiveCapacityUsesDefault(t *testing.T) {
	store, err := conversation.NewStore(0)
	require.NoError(t, err)
	require.NotNil(t, store)
}
