// Package messenger implements the aggregate root of the model.
// A Messenger exclusively owns every user, chat, and message created
// through it and is the only component with externally facing
// operations; entities reference each other by id and are resolved
// through the Messenger's collections.
package messenger

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"messenger/auth"
	"messenger/domain"
	"messenger/errors"
	"messenger/internal"
)

// Messenger owns the three entity collections. User and message ids are
// assigned sequentially from 0, so both live in append-only slices where
// the id doubles as the index. Chat ids are caller-supplied and possibly
// sparse, so chats live in a map.
type Messenger struct {
	log     *slog.Logger
	hasher  auth.CredentialHasher
	weights Weights

	users    []*domain.User
	chats    map[domain.ChatID]*domain.Chat
	messages []*domain.Message
}

func New(hasher auth.CredentialHasher, weights Weights, log *slog.Logger) *Messenger {
	if log == nil {
		log = slog.Default()
	}
	return &Messenger{
		log:     log.With("messenger_id", uuid.New().String()),
		hasher:  hasher,
		weights: weights,
		chats:   make(map[domain.ChatID]*domain.Chat),
	}
}

// NewFromEnv builds a Messenger with weights taken from the environment,
// falling back to the documented defaults when a variable is unset. A
// nil hasher is replaced by an argon2 hasher tuned from the same
// environment.
func NewFromEnv(hasher auth.CredentialHasher, log *slog.Logger) (*Messenger, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if hasher == nil {
		hasher = auth.NewArgon2Hasher(
			uint32(config.HashMemory),
			uint32(config.HashIterations),
			uint8(config.HashParallelism),
		)
	}
	return New(hasher, WeightsFromConfig(config), log), nil
}

// CreateChat registers an empty chat under a caller-supplied id.
func (m *Messenger) CreateChat(id domain.ChatID) error {
	if _, ok := m.chats[id]; ok {
		return fmt.Errorf("%w: chat %d", errors.ErrDuplicateEntity, id)
	}
	m.chats[id] = domain.NewChat(id)
	m.log.Debug("chat created", "chat_id", int(id))
	return nil
}

// CreateUser hashes the credential and registers the account under the
// next sequential id. The plaintext credential is never stored.
func (m *Messenger) CreateUser(login, credential string) (*domain.User, error) {
	hash, err := m.hasher.Hash(credential)
	if err != nil {
		return nil, fmt.Errorf("hashing failed: %w", err)
	}
	id := domain.UserID(len(m.users))
	user := domain.NewUser(id, login, hash)
	m.users = append(m.users, user)
	m.log.Debug("user created", "user_id", int(id), "login", login)
	return user, nil
}

// AddUserToChat enrolls the user in the chat and records the membership
// on both sides. It returns the chat's member count after the call, so
// repeat calls with the same pair report an unchanged count.
func (m *Messenger) AddUserToChat(chatID domain.ChatID, userID domain.UserID) (int, error) {
	chat, ok := m.chats[chatID]
	if !ok {
		return 0, fmt.Errorf("%w: chat %d", errors.ErrInvalidReference, chatID)
	}
	if !m.userExists(userID) {
		return 0, fmt.Errorf("%w: user %d", errors.ErrInvalidReference, userID)
	}
	count := chat.AddUser(userID)
	m.users[userID].RecordChat(chatID)
	m.log.Debug("user joined chat", "chat_id", int(chatID), "user_id", int(userID), "members", count)
	return count, nil
}

// WriteMessage validates sender, receiver, and chat before touching any
// state, then stores the message under the next sequential id, appends
// it to the chat's log, and records it on both participants.
func (m *Messenger) WriteMessage(senderID, receiverID domain.UserID, chatID domain.ChatID, date, text string) (domain.MessageID, error) {
	if !m.userExists(senderID) {
		return 0, fmt.Errorf("%w: sender %d", errors.ErrInvalidReference, senderID)
	}
	if !m.userExists(receiverID) {
		return 0, fmt.Errorf("%w: receiver %d", errors.ErrInvalidReference, receiverID)
	}
	chat, ok := m.chats[chatID]
	if !ok {
		return 0, fmt.Errorf("%w: chat %d", errors.ErrInvalidReference, chatID)
	}

	id := domain.MessageID(len(m.messages))
	m.messages = append(m.messages, &domain.Message{
		ID:         id,
		ChatID:     chatID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Date:       date,
		Text:       text,
	})
	chat.RecordMessage(id)
	m.users[senderID].RecordMessage(id)
	m.users[receiverID].RecordMessage(id)
	m.log.Debug("message written", "message_id", int(id), "chat_id", int(chatID), "sender_id", int(senderID))
	return id, nil
}

// FindPattern returns, in message-id order, a copy of every message
// whose text contains pattern as a substring. The empty pattern matches
// every message; no match yields an empty result, never an error.
func (m *Messenger) FindPattern(pattern string) []domain.Message {
	return lo.FilterMap(m.messages, func(msg *domain.Message, _ int) (domain.Message, bool) {
		return *msg, msg.ContainsPattern(pattern)
	})
}

// SharedChats returns the sorted ids of the chats every given user is a
// member of. An empty user list yields an empty result rather than the
// full chat set.
func (m *Messenger) SharedChats(userIDs []domain.UserID) ([]domain.ChatID, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	for _, id := range userIDs {
		if !m.userExists(id) {
			return nil, fmt.Errorf("%w: user %d", errors.ErrInvalidReference, id)
		}
	}
	var shared []domain.ChatID
	for chatID := range m.chats {
		member := lo.EveryBy(userIDs, func(id domain.UserID) bool {
			return m.users[id].MemberOf(chatID)
		})
		if member {
			shared = append(shared, chatID)
		}
	}
	slices.Sort(shared)
	return shared, nil
}

// AddFriend appends friendID to the user's friends list. Both accounts
// must exist; duplicates are ignored.
func (m *Messenger) AddFriend(userID, friendID domain.UserID) error {
	if !m.userExists(userID) {
		return fmt.Errorf("%w: user %d", errors.ErrInvalidReference, userID)
	}
	if !m.userExists(friendID) {
		return fmt.Errorf("%w: user %d", errors.ErrInvalidReference, friendID)
	}
	m.users[userID].AddFriend(friendID)
	return nil
}

// Authenticate checks a login/credential pair against the stored hash.
// An unknown login and a wrong credential are indistinguishable to the
// caller, to prevent account enumeration.
func (m *Messenger) Authenticate(login, credential string) (bool, error) {
	user, ok := lo.Find(m.users, func(u *domain.User) bool { return u.Login == login })
	if !ok {
		return false, nil
	}
	return m.hasher.Compare(credential, user.PasswordHash)
}

func (m *Messenger) User(id domain.UserID) (*domain.User, error) {
	if !m.userExists(id) {
		return nil, fmt.Errorf("%w: user %d", errors.ErrInvalidReference, id)
	}
	return m.users[id], nil
}

func (m *Messenger) Chat(id domain.ChatID) (*domain.Chat, error) {
	chat, ok := m.chats[id]
	if !ok {
		return nil, fmt.Errorf("%w: chat %d", errors.ErrInvalidReference, id)
	}
	return chat, nil
}

func (m *Messenger) Message(id domain.MessageID) (domain.Message, error) {
	if id < 0 || int(id) >= len(m.messages) {
		return domain.Message{}, fmt.Errorf("%w: message %d", errors.ErrInvalidReference, id)
	}
	return *m.messages[id], nil
}

func (m *Messenger) UserCount() int    { return len(m.users) }
func (m *Messenger) ChatCount() int    { return len(m.chats) }
func (m *Messenger) MessageCount() int { return len(m.messages) }

// Ids are contiguous from creation order, so existence is a bounds check.
func (m *Messenger) userExists(id domain.UserID) bool {
	return id >= 0 && int(id) < len(m.users)
}
