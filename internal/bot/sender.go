package bot

//go:generate mockgen -source=sender.go -destination=../mocks/mock_sender.go -package=mocks

import (
	"github.com/eliseohh/suggestbot/internal/store"
	tele "gopkg.in/telebot.v3"
)

// Sender is the outbound half of the Telegram client. *tele.Bot satisfies it.
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Recorder persists delivery counters. A nil Recorder disables stats.
type Recorder interface {
	Record(r store.Report) error
	Stats() (store.Stats, error)
}

// ErrorReporter ships unhandled handler errors to an external tracker.
type ErrorReporter func(err error, tags map[string]string)
