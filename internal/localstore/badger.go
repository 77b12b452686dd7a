// Package localstore keeps sessions and assistant chat history in an embedded
// Badger database. It is used when no Redis URL is configured.
package localstore

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nursery_manager/internal/auth"
	"nursery_manager/internal/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type Store struct {
	db *badger.DB
}

// Open opens the database at path. An empty path gives an in-memory store.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func sessionKey(id string) []byte {
	return []byte("session:" + id)
}

// chatPrefix hex-encodes both ids so no session id can be a prefix of another
// session's keys.
func chatPrefix(userID, sessionID string) []byte {
	return []byte(fmt.Sprintf("chat:%s:%s:", hex.EncodeToString([]byte(userID)), hex.EncodeToString([]byte(sessionID))))
}

func (s *Store) SaveSession(ctx context.Context, sess *auth.Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(sessionKey(sess.ID), data).WithTTL(ttl))
	})
}

func (s *Store) LoadSession(ctx context.Context, id string) (*auth.Session, error) {
	var sess auth.Session
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sess)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, auth.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &sess, nil
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(id))
	})
}

// AppendChat writes one exchange under a time-ordered key so a prefix scan
// returns the conversation in order.
func (s *Store) AppendChat(ctx context.Context, userID string, ex *models.ChatExchange, ttl time.Duration) error {
	data, err := json.Marshal(ex)
	if err != nil {
		return fmt.Errorf("failed to marshal chat exchange: %w", err)
	}
	key := append(chatPrefix(userID, ex.SessionID),
		[]byte(fmt.Sprintf("%020d:%s", ex.Timestamp.UnixNano(), uuid.NewString()[:8]))...)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(key, data).WithTTL(ttl))
	})
}

// ChatHistory returns the last limit exchanges, oldest first. A limit of
// zero or less returns everything.
func (s *Store) ChatHistory(ctx context.Context, userID, sessionID string, limit int) ([]models.ChatExchange, error) {
	history := []models.ChatExchange{}
	prefix := chatPrefix(userID, sessionID)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var ex models.ChatExchange
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &ex)
			}); err != nil {
				return err
			}
			history = append(history, ex)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get chat history: %w", err)
	}
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	return history, nil
}
