// Package notify delivers scheduler summaries to Telegram. Notification is
// best effort: a delivery failure is logged by the caller, never retried.
package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/walletapp/wallet/internal/recurring"
)

type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating Telegram bot: %w", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

// BatchProcessed sends a summary of one scheduler run.
func (t *Telegram) BatchProcessed(result recurring.BatchResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "💸 Processed %d of %d due recurring transactions", result.Processed, result.TotalDue)
	for _, f := range result.Failures {
		fmt.Fprintf(&b, "\n⚠️ #%d failed: %v", f.RecurringTransactionID, f.Err)
	}

	msg := tgbotapi.NewMessage(t.chatID, b.String())
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("sending batch summary: %w", err)
	}
	return nil
}
