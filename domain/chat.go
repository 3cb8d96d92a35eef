package domain

import "fmt"

type ChatID int

// Chat is a conversation: a member set and an ordered message log.
// The log preserves posting order; the registry guarantees a message id
// is recorded at most once.
type Chat struct {
	ID ChatID

	users    map[UserID]struct{}
	messages []MessageID
}

func NewChat(id ChatID) *Chat {
	return &Chat{
		ID:    id,
		users: make(map[UserID]struct{}),
	}
}

// AddUser inserts the user into the member set and returns the member
// count after the insert. Re-adding an existing member is a no-op, so
// the returned count is unchanged on repeat calls.
func (c *Chat) AddUser(id UserID) int {
	c.users[id] = struct{}{}
	return len(c.users)
}

// RecordMessage appends to the message log, preserving posting order.
func (c *Chat) RecordMessage(id MessageID) {
	c.messages = append(c.messages, id)
}

func (c *Chat) HasUser(id UserID) bool {
	_, ok := c.users[id]
	return ok
}

func (c *Chat) MemberCount() int {
	return len(c.users)
}

func (c *Chat) Messages() []MessageID {
	out := make([]MessageID, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Chat) String() string {
	return fmt.Sprintf("Chat #%d with %d users and %d messages", c.ID, len(c.users), len(c.messages))
}
