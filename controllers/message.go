package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/db"
	"github.com/Hephzy-d/elderly-care-connect/models"
	"github.com/Hephzy-d/elderly-care-connect/redis"
)

// Conversation is the derived view of a message thread with one counterpart
type Conversation struct {
	CounterpartID uint           `json:"counterpart_id"`
	Counterpart   models.User    `json:"counterpart"`
	LastMessage   models.Message `json:"last_message"`
	UnreadCount   int64          `json:"unread_count"`
}

// SendMessage inserts a directed message and bumps the recipient's unread counter
func SendMessage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	type MessageInput struct {
		RecipientID uint   `json:"recipient_id"`
		Content     string `json:"content"`
	}

	input := new(MessageInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.RecipientID == 0 || input.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Recipient and content are required",
		})
	}

	var recipient models.User
	if err := db.DB.First(&recipient, input.RecipientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Recipient not found",
		})
	}

	message := models.Message{
		SenderID:    userID,
		RecipientID: input.RecipientID,
		Content:     input.Content,
	}
	if err := db.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send message",
		})
	}

	// Counter only; the message log itself stays in Postgres
	if redis.Client != nil {
		if err := redis.Client.Incr(redis.Ctx, redis.UnreadKey(input.RecipientID, userID)).Err(); err != nil {
			log.Printf("Failed to bump unread counter: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetConversations derives the conversation list from the caller's message log
func GetConversations(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	var messages []models.Message
	if err := db.DB.Preload("Sender").Preload("Recipient").
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at desc").
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch messages",
		})
	}

	conversations := groupConversations(userID, messages)

	// Fill unread counters from redis
	if redis.Client != nil {
		for i := range conversations {
			count, err := redis.Client.Get(redis.Ctx, redis.UnreadKey(userID, conversations[i].CounterpartID)).Int64()
			if err == nil {
				conversations[i].UnreadCount = count
			}
		}
	}

	for i := range conversations {
		conversations[i].Counterpart.Password = ""
	}

	return c.JSON(conversations)
}

// groupConversations folds a time-ordered (newest first) message list into one
// entry per counterpart, keeping the latest message for each.
func groupConversations(userID uint, messages []models.Message) []Conversation {
	seen := make(map[uint]bool)
	conversations := []Conversation{}

	for _, message := range messages {
		counterpartID := message.SenderID
		counterpart := message.Sender
		if message.SenderID == userID {
			counterpartID = message.RecipientID
			counterpart = message.Recipient
		}

		if seen[counterpartID] {
			continue
		}
		seen[counterpartID] = true

		conversations = append(conversations, Conversation{
			CounterpartID: counterpartID,
			Counterpart:   counterpart,
			LastMessage:   message,
		})
	}

	return conversations
}

// GetMessages returns the thread between the caller and a counterpart, oldest
// first, and clears the caller's unread counter for that counterpart
func GetMessages(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	counterpartID, err := strconv.ParseUint(c.Params("userID"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var messages []models.Message
	if err := db.DB.Preload("Sender").
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, counterpartID, counterpartID, userID).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch messages",
		})
	}

	if redis.Client != nil {
		if err := redis.Client.Del(redis.Ctx, redis.UnreadKey(userID, uint(counterpartID))).Err(); err != nil {
			log.Printf("Failed to clear unread counter: %v", err)
		}
	}

	for i := range messages {
		messages[i].Sender.Password = ""
	}

	return c.JSON(messages)
}
