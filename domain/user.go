// Package domain contains the core concepts of the messenger model.
// Entities are passive data holders owned by a single registry; they
// reference each other by identifier only, never by direct pointer.
package domain

import (
	"fmt"

	"github.com/samber/lo"
)

type UserID int

// User is an account. The credential is stored as a one-way hash,
// never as the original string. Chat and message membership are kept
// as identifier sets resolved through the owning registry.
type User struct {
	ID           UserID
	Login        string
	PasswordHash string

	phone    string
	chats    map[ChatID]struct{}
	messages map[MessageID]struct{}
	friends  []UserID
}

func NewUser(id UserID, login, passwordHash string) *User {
	return &User{
		ID:           id,
		Login:        login,
		PasswordHash: passwordHash,
		chats:        make(map[ChatID]struct{}),
		messages:     make(map[MessageID]struct{}),
	}
}

// RecordChat marks the user as a member of the chat. Idempotent.
func (u *User) RecordChat(id ChatID) {
	u.chats[id] = struct{}{}
}

// RecordMessage marks the message as sent or received by the user. Idempotent.
func (u *User) RecordMessage(id MessageID) {
	u.messages[id] = struct{}{}
}

func (u *User) MemberOf(id ChatID) bool {
	_, ok := u.chats[id]
	return ok
}

func (u *User) SetPhone(phone string) {
	u.phone = phone
}

func (u *User) Phone() string {
	return u.phone
}

// AddFriend appends to the friends list, ignoring duplicates.
// Order of first insertion is preserved.
func (u *User) AddFriend(id UserID) {
	if lo.Contains(u.friends, id) {
		return
	}
	u.friends = append(u.friends, id)
}

func (u *User) Friends() []UserID {
	out := make([]UserID, len(u.friends))
	copy(out, u.friends)
	return out
}

func (u *User) ChatCount() int {
	return len(u.chats)
}

func (u *User) MessageCount() int {
	return len(u.messages)
}

// String is a diagnostic summary, not a serialization format.
func (u *User) String() string {
	return fmt.Sprintf("User %s with %d chats and %d messages", u.Login, len(u.chats), len(u.messages))
}
