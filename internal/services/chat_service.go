package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"nursery_manager/internal/auth"
	"nursery_manager/internal/models"
	"nursery_manager/pkg/assistant"
)

// ChatStore keeps assistant conversations per user and chat session.
type ChatStore interface {
	AppendChat(ctx context.Context, userID string, ex *models.ChatExchange, ttl time.Duration) error
	ChatHistory(ctx context.Context, userID, sessionID string, limit int) ([]models.ChatExchange, error)
}

// Assistant produces a reply from the prior turns and a new message.
type Assistant interface {
	Reply(ctx context.Context, history []assistant.Message, userMessage string) (string, error)
}

const (
	chatContextTurns = 10
	offlineReply     = "The assistant is not configured right now. Please ask an admin to set an API key."
)

type ChatService interface {
	Send(ctx context.Context, session *auth.Session, chatSessionID, message string) (*models.ChatExchange, error)
	History(ctx context.Context, session *auth.Session, chatSessionID string) ([]models.ChatExchange, error)
}

type chatService struct {
	store      ChatStore
	assistant  Assistant
	historyTTL time.Duration
	now        Clock
}

func NewChatService(store ChatStore, assistant Assistant, historyTTL time.Duration, now Clock) ChatService {
	return &chatService{store: store, assistant: assistant, historyTTL: historyTTL, now: now}
}

func (s *chatService) Send(ctx context.Context, session *auth.Session, chatSessionID, message string) (*models.ChatExchange, error) {
	if !session.Can(auth.UseAssistant) {
		return nil, ErrForbidden
	}
	message = strings.TrimSpace(message)
	if chatSessionID == "" || message == "" {
		return nil, fmt.Errorf("%w: session_id and user_message are required", ErrInvalidInput)
	}

	previous, err := s.store.ChatHistory(ctx, session.UserID, chatSessionID, chatContextTurns)
	if err != nil {
		return nil, err
	}
	history := make([]assistant.Message, 0, 2*len(previous))
	for _, ex := range previous {
		history = append(history,
			assistant.Message{Role: "user", Content: ex.UserMessage},
			assistant.Message{Role: "assistant", Content: ex.AIResponse})
	}

	reply, err := s.assistant.Reply(ctx, history, message)
	switch {
	case errors.Is(err, assistant.ErrNotConfigured):
		reply = offlineReply
	case err != nil:
		log.Printf("Assistant error: %v", err)
		return nil, ErrAssistantUnavailable
	}

	exchange := &models.ChatExchange{
		SessionID:   chatSessionID,
		UserMessage: message,
		AIResponse:  reply,
		Timestamp:   s.now(),
	}
	if err := s.store.AppendChat(ctx, session.UserID, exchange, s.historyTTL); err != nil {
		return nil, err
	}
	return exchange, nil
}

func (s *chatService) History(ctx context.Context, session *auth.Session, chatSessionID string) ([]models.ChatExchange, error) {
	if !session.Can(auth.UseAssistant) {
		return nil, ErrForbidden
	}
	return s.store.ChatHistory(ctx, session.UserID, chatSessionID, 0)
}
