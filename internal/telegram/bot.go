// Package telegram adapts the dialogue engine to the Telegram Bot API:
// messages and button callbacks become dialogue events, replies become
// messages, inline keyboards, and document uploads.
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder-bot/internal/dialogue"
)

// pollTimeout is the long-polling timeout in seconds.
const pollTimeout = 30

// selectPrefix tags inline-button callback data so stale button presses from
// other message types are recognizable.
const selectPrefix = "select"

// choicesPerRow controls inline keyboard layout.
const choicesPerRow = 2

// Bot runs the Telegram transport for one bot credential. Updates are
// consumed on a single goroutine, which serializes input handling per
// session as the dialogue engine requires.
type Bot struct {
	api    *tgbotapi.BotAPI
	engine *dialogue.Engine
	log    *zap.Logger
}

// New authenticates against the Telegram Bot API and wires the dialogue
// engine to it.
func New(token string, engine *dialogue.Engine, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}
	return &Bot{api: api, engine: engine, log: log}, nil
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = pollTimeout
	updates := b.api.GetUpdatesChan(updateConfig)

	b.log.Info("bot polling started", zap.String("username", b.api.Self.UserName))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
		return nil
	})
	g.Go(func() error {
		for update := range updates {
			b.handleUpdate(update)
		}
		b.log.Info("bot polling stopped")
		return nil
	})
	return g.Wait()
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	event := messageEvent(msg.Text, msg.Command())
	replies := b.engine.ProcessInput(sessionID(msg.Chat.ID), event)
	b.deliver(msg.Chat.ID, replies)
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	// Acknowledge the button press so the client stops its spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.log.Warn("failed to acknowledge callback", zap.Error(err))
	}

	selection, ok := callbackSelection(query.Data)
	if !ok || query.Message == nil {
		return
	}

	chatID := query.Message.Chat.ID
	replies := b.engine.ProcessInput(sessionID(chatID), dialogue.Event{
		Kind:      dialogue.EventSelect,
		Selection: selection,
	})
	b.deliver(chatID, replies)
}

// deliver sends each reply in order. Delivery failures are logged and the
// remaining replies are still attempted.
func (b *Bot) deliver(chatID int64, replies []dialogue.Reply) {
	for _, reply := range replies {
		var err error
		if reply.Document != nil {
			document := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
				Name:  reply.Document.Filename,
				Bytes: reply.Document.Data,
			})
			document.Caption = reply.Text
			_, err = b.api.Send(document)
		} else {
			msg := tgbotapi.NewMessage(chatID, reply.Text)
			if len(reply.Choices) > 0 {
				msg.ReplyMarkup = choiceKeyboard(reply.Choices)
			}
			_, err = b.api.Send(msg)
		}
		if err != nil {
			b.log.Error("failed to deliver reply",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
		}
	}
}

// messageEvent maps an incoming message to a dialogue event. The /start and
// /build commands have dedicated events; everything else is step input.
func messageEvent(text, command string) dialogue.Event {
	switch command {
	case "start":
		return dialogue.Event{Kind: dialogue.EventStart}
	case "build":
		return dialogue.Event{Kind: dialogue.EventBuild}
	default:
		return dialogue.Event{Kind: dialogue.EventText, Text: text}
	}
}

// callbackSelection extracts the selected choice ID from callback data.
func callbackSelection(data string) (string, bool) {
	prefix, selection, found := strings.Cut(data, ":")
	if !found || prefix != selectPrefix || selection == "" {
		return "", false
	}
	return selection, true
}

// choiceKeyboard lays out choices as inline buttons, two per row.
func choiceKeyboard(choices []dialogue.Choice) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	for i := 0; i < len(choices); i += choicesPerRow {
		row := []tgbotapi.InlineKeyboardButton{}
		for j := i; j < i+choicesPerRow && j < len(choices); j++ {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				choices[j].Label,
				selectPrefix+":"+choices[j].ID,
			))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func sessionID(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
