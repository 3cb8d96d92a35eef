package messenger

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"messenger/domain"
)

func TestMessenger_Score_IsLinearInCounts(t *testing.T) {
	req := require.New(t)
	m := newTestMessenger(t)
	req.Zero(m.Score())

	alice, err := m.CreateUser("alice", "pw1")
	req.NoError(err)
	bob, err := m.CreateUser("bob", "pw2")
	req.NoError(err)
	req.NoError(m.CreateChat(1))
	for i := 0; i < 3; i++ {
		_, err := m.WriteMessage(alice.ID, bob.ID, 1, "2024-01-01", "hi")
		req.NoError(err)
	}

	// 2 users, 3 messages, 1 chat
	req.InDelta(2*0.6+3*0.3+1*0.1, m.Score(), 1e-9)
	req.InDelta(2.2, m.Score(), 1e-9)
}

func TestMessenger_Ordering_IsScoreBased(t *testing.T) {
	req := require.New(t)
	small := newTestMessenger(t)
	big := newTestMessenger(t)
	_, err := big.CreateUser("alice", "pw1")
	req.NoError(err)

	req.True(small.Less(big))
	req.True(small.LessOrEqual(big))
	req.False(big.Less(small))
	req.False(big.LessOrEqual(small))
	req.False(small.Equal(big))
}

func TestMessenger_Equal_IgnoresContents(t *testing.T) {
	req := require.New(t)
	// Same collection sizes, entirely different contents: the scores
	// tie, so the messengers compare equal.
	left := newTestMessenger(t)
	right := newTestMessenger(t)
	_, err := left.CreateUser("alice", "pw1")
	req.NoError(err)
	_, err = left.CreateUser("bob", "pw2")
	req.NoError(err)
	req.NoError(left.CreateChat(5))

	_, err = right.CreateUser("carol", "pw3")
	req.NoError(err)
	_, err = right.CreateUser("dave", "pw4")
	req.NoError(err)
	req.NoError(right.CreateChat(9))

	req.True(left.Equal(right))
	req.True(left.LessOrEqual(right))
	req.False(left.Less(right))
}

func TestMessenger_Equal_TiesAcrossDifferentShapes(t *testing.T) {
	req := require.New(t)
	// 10 users against 20 messages: both sides score exactly 6.0
	// through different weight terms.
	left := newTestMessenger(t)
	for i := 0; i < 10; i++ {
		_, err := left.CreateUser(fmt.Sprintf("user-%d", i), "pw")
		req.NoError(err)
	}

	right := newTestMessenger(t)
	for i := 0; i < 20; i++ {
		right.messages = append(right.messages, &domain.Message{ID: domain.MessageID(i), Text: "hi"})
	}

	req.InDelta(6.0, left.Score(), 1e-9)
	req.InDelta(6.0, right.Score(), 1e-9)
	req.True(left.Equal(right))
	req.True(left.LessOrEqual(right))
	req.False(left.Less(right))
}

func TestWeightsFromConfig_DefaultsMatchDocumentedScore(t *testing.T) {
	req := require.New(t)
	weights := DefaultWeights()

	req.InDelta(0.6, weights.User, 1e-12)
	req.InDelta(0.3, weights.Message, 1e-12)
	req.InDelta(0.1, weights.Chat, 1e-12)
}

func newMessengerWithPhones(t *testing.T, phones ...string) *Messenger {
	t.Helper()
	req := require.New(t)
	m := newTestMessenger(t)
	for i, phone := range phones {
		user, err := m.CreateUser("user-"+phone, "pw")
		req.NoError(err)
		req.Equal(domain.UserID(i), user.ID)
		user.SetPhone(phone)
	}
	return m
}

func TestMessenger_SetAlgebra(t *testing.T) {
	req := require.New(t)
	left := newMessengerWithPhones(t, "111", "222", "333")
	right := newMessengerWithPhones(t, "222", "444")

	req.Equal([]string{"111", "333"}, left.Difference(right))
	req.Equal([]string{"444"}, right.Difference(left))
	req.Equal([]string{"222"}, left.Intersection(right))
	req.Equal([]string{"111", "222", "333", "444"}, left.Union(right))
}

func TestMessenger_SetAlgebra_UsersWithSamePhoneCollapse(t *testing.T) {
	req := require.New(t)
	// Two users sharing a phone (here the empty default) are one element
	// of the phone set: identity is by phone, not by user id.
	left := newMessengerWithPhones(t, "", "")
	right := newMessengerWithPhones(t, "")

	req.Empty(left.Difference(right))
	req.Equal([]string{""}, left.Intersection(right))
	req.Equal([]string{""}, left.Union(right))
}

func TestMessenger_SetAlgebra_SatisfiesSetLaws(t *testing.T) {
	req := require.New(t)
	left := newMessengerWithPhones(t, "111", "222", "333", "555")
	right := newMessengerWithPhones(t, "222", "444", "555")

	// A ∪ B = (A \ B) ∪ (B \ A) ∪ (A ∩ B)
	recombined := lo.Union(left.Difference(right), right.Difference(left), left.Intersection(right))
	req.ElementsMatch(left.Union(right), recombined)
}

func TestMessenger_String(t *testing.T) {
	req := require.New(t)
	m := New(nil, DefaultWeights(), slog.Default())

	req.Equal("Messenger with 0 users, 0 chats and 0 messages", m.String())
}
