package controllers

import (
	"testing"
	"time"

	"github.com/Hephzy-d/elderly-care-connect/models"
)

func TestGroupConversations(t *testing.T) {
	now := time.Now()

	// Newest first, the order GetConversations fetches in
	messages := []models.Message{
		{ID: 4, SenderID: 2, RecipientID: 1, Content: "see you then", CreatedAt: now},
		{ID: 3, SenderID: 1, RecipientID: 2, Content: "thursday works", CreatedAt: now.Add(-time.Minute)},
		{ID: 2, SenderID: 3, RecipientID: 1, Content: "hello", CreatedAt: now.Add(-2 * time.Minute)},
		{ID: 1, SenderID: 1, RecipientID: 2, Content: "hi", CreatedAt: now.Add(-3 * time.Minute)},
	}

	conversations := groupConversations(1, messages)

	if len(conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(conversations))
	}

	// Counterpart 2 comes first since its latest message is newest
	if conversations[0].CounterpartID != 2 {
		t.Fatalf("expected counterpart 2 first, got %d", conversations[0].CounterpartID)
	}
	if conversations[0].LastMessage.ID != 4 {
		t.Fatalf("expected latest message 4, got %d", conversations[0].LastMessage.ID)
	}
	if conversations[1].CounterpartID != 3 {
		t.Fatalf("expected counterpart 3, got %d", conversations[1].CounterpartID)
	}
	if conversations[1].LastMessage.ID != 2 {
		t.Fatalf("expected latest message 2, got %d", conversations[1].LastMessage.ID)
	}
}

func TestGroupConversationsCounterpartSide(t *testing.T) {
	// The counterpart is the recipient for sent messages and the sender for
	// received ones
	messages := []models.Message{
		{ID: 2, SenderID: 1, RecipientID: 5, Sender: models.User{ID: 1}, Recipient: models.User{ID: 5}},
		{ID: 1, SenderID: 6, RecipientID: 1, Sender: models.User{ID: 6}, Recipient: models.User{ID: 1}},
	}

	conversations := groupConversations(1, messages)
	if len(conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(conversations))
	}
	if conversations[0].Counterpart.ID != 5 {
		t.Fatalf("expected counterpart user 5, got %d", conversations[0].Counterpart.ID)
	}
	if conversations[1].Counterpart.ID != 6 {
		t.Fatalf("expected counterpart user 6, got %d", conversations[1].Counterpart.ID)
	}
}

func TestGroupConversationsEmpty(t *testing.T) {
	conversations := groupConversations(1, nil)
	if len(conversations) != 0 {
		t.Fatalf("expected no conversations, got %d", len(conversations))
	}
}
