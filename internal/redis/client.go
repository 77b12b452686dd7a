package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nursery_manager/internal/auth"
	"nursery_manager/internal/models"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func sessionKey(id string) string {
	return "session:" + id
}

func chatKey(userID, sessionID string) string {
	return fmt.Sprintf("chat:%s:%s", userID, sessionID)
}

// Session management
func (c *Client) SaveSession(ctx context.Context, s *auth.Session, ttl time.Duration) error {
	jsonData, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	return c.rdb.Set(ctx, sessionKey(s.ID), jsonData, ttl).Err()
}

func (c *Client) LoadSession(ctx context.Context, id string) (*auth.Session, error) {
	val, err := c.rdb.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, auth.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session auth.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, sessionKey(id)).Err()
}

// Chat history, one list per user and chat session. The TTL is refreshed on
// every append.
func (c *Client) AppendChat(ctx context.Context, userID string, ex *models.ChatExchange, ttl time.Duration) error {
	jsonData, err := json.Marshal(ex)
	if err != nil {
		return fmt.Errorf("failed to marshal chat exchange: %w", err)
	}

	key := chatKey(userID, ex.SessionID)
	pipe := c.rdb.TxPipeline()
	pipe.RPush(ctx, key, jsonData)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append chat exchange: %w", err)
	}
	return nil
}

// ChatHistory returns the last limit exchanges, oldest first.
func (c *Client) ChatHistory(ctx context.Context, userID, sessionID string, limit int) ([]models.ChatExchange, error) {
	vals, err := c.rdb.LRange(ctx, chatKey(userID, sessionID), int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get chat history: %w", err)
	}

	history := make([]models.ChatExchange, 0, len(vals))
	for _, v := range vals {
		var ex models.ChatExchange
		if err := json.Unmarshal([]byte(v), &ex); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chat exchange: %w", err)
		}
		history = append(history, ex)
	}
	return history, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
