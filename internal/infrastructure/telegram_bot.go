package infrastructure

import (
	"context"
	"fmt"

	"project_travelSafe/internal/entities"
	"project_travelSafe/internal/logger"
	"project_travelSafe/internal/usecases"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramBot is an optional gateway that feeds Telegram messages into
// the chat service. Each incoming message becomes a stateless
// single-turn history; no transcript is kept between messages.
type TelegramBot struct {
	bot      *tgbotapi.BotAPI
	chat     *usecases.ChatService
	sessions *SessionManager
	log      logger.Logger
}

func NewTelegramBot(token string, chat *usecases.ChatService, log logger.Logger) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot token issue: %w", err)
	}
	return &TelegramBot{
		bot:      bot,
		chat:     chat,
		sessions: NewSessionManager(),
		log:      log.WithFields(map[string]interface{}{"gateway": "telegram"}),
	}, nil
}

// Run polls for updates until ctx is done. Blocking.
func (t *TelegramBot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := t.bot.GetUpdatesChan(u)

	t.log.Info("telegram gateway connected", map[string]interface{}{"bot": t.bot.Self.UserName})

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			t.handleMessage(ctx, update.Message)
		}
	}
}

func (t *TelegramBot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() && msg.Command() == "start" {
		t.send(chatID, "Welcome! 👋 Tell me where you're traveling to and I'll include safety guidance for your destination.")
		return
	}

	session := t.sessions.GetOrCreateSession(chatID)
	if !session.BeginTurn() {
		// Silently drop double-sends while a turn is in flight.
		return
	}

	history := []entities.Message{{Role: entities.RoleUser, Content: msg.Text}}

	go func() {
		defer session.EndTurn()

		result, err := t.chat.HandleTurn(ctx, history, "", "telegram")
		if err != nil {
			t.log.WithError(err).Error("turn failed", map[string]interface{}{"chatID": chatID})
			t.send(chatID, "Sorry, I couldn't process that right now. Please try again.")
			return
		}
		t.send(chatID, result.ResponseText)
	}()
}

func (t *TelegramBot) send(chatID int64, text string) {
	reply := tgbotapi.NewMessage(chatID, text)
	reply.ParseMode = "Markdown"
	if _, err := t.bot.Send(reply); err != nil {
		t.log.WithError(err).Warn("send failed", map[string]interface{}{"chatID": chatID})
	}
}
