package messenger

import (
	"slices"

	"github.com/samber/lo"

	"messenger/domain"
	"messenger/internal"
)

// Weights are the per-entity coefficients of the activity score.
type Weights struct {
	User    float64
	Message float64
	Chat    float64
}

func DefaultWeights() Weights {
	return Weights{User: 0.6, Message: 0.3, Chat: 0.1}
}

func WeightsFromConfig(config internal.Config) Weights {
	return Weights{
		User:    config.ScoreUserWeight,
		Message: config.ScoreMessageWeight,
		Chat:    config.ScoreChatWeight,
	}
}

// Score is the weighted activity measure of the messenger. It is
// computed from the current collection sizes on every call, never
// cached.
func (m *Messenger) Score() float64 {
	return float64(len(m.users))*m.weights.User +
		float64(len(m.messages))*m.weights.Message +
		float64(len(m.chats))*m.weights.Chat
}

func (m *Messenger) Less(other *Messenger) bool {
	return m.Score() < other.Score()
}

func (m *Messenger) LessOrEqual(other *Messenger) bool {
	return m.Score() <= other.Score()
}

// Equal compares activity scores, not contents. Two messengers with
// entirely different users and messages are equal whenever their scores
// tie; this is a summary comparison, not structural equality.
func (m *Messenger) Equal(other *Messenger) bool {
	return m.Score() == other.Score()
}

// Difference returns the phone numbers held by users of m and by no
// user of other. Results of the set operators are sorted and
// de-duplicated; users sharing a phone number (including the empty
// default) are indistinguishable here, identity is by phone.
func (m *Messenger) Difference(other *Messenger) []string {
	left, _ := lo.Difference(m.phones(), other.phones())
	slices.Sort(left)
	return left
}

// Union returns the phone numbers held by users of either messenger.
func (m *Messenger) Union(other *Messenger) []string {
	union := lo.Union(m.phones(), other.phones())
	slices.Sort(union)
	return union
}

// Intersection returns the phone numbers held by users of both messengers.
func (m *Messenger) Intersection(other *Messenger) []string {
	intersection := lo.Intersect(m.phones(), other.phones())
	slices.Sort(intersection)
	return intersection
}

func (m *Messenger) phones() []string {
	return lo.Uniq(lo.Map(m.users, func(u *domain.User, _ int) string {
		return u.Phone()
	}))
}
