package bot

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/eliseohh/suggestbot/internal/config"
	"github.com/eliseohh/suggestbot/internal/store"
	tele "gopkg.in/telebot.v3"
)

// commandRx matches the "/name" or "/name@bot" prefix clients mark as a command.
var commandRx = regexp.MustCompile(`^/[A-Za-z][A-Za-z0-9_]*(@\w+)?(\s|$)`)

type Bot struct {
	api    *tele.Bot
	sender Sender
	admins config.AdminSet
	stats  Recorder
	report ErrorReporter
	log    *slog.Logger
}

// New connects to Telegram and registers every handler. stats and report may
// be nil.
func New(cfg *config.Config, log *slog.Logger, stats Recorder, report ErrorReporter) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
	}
	return newBot(pref, cfg.Admins, log, stats, report)
}

func newBot(pref tele.Settings, admins config.AdminSet, log *slog.Logger, stats Recorder, report ErrorReporter) (*Bot, error) {
	bot := &Bot{admins: admins, stats: stats, report: report, log: log}
	pref.OnError = bot.handleError

	api, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}

	bot.api = api
	bot.sender = api
	bot.register()
	return bot, nil
}

// Start publishes the command menu and blocks polling for updates until Stop.
func (b *Bot) Start() {
	if err := b.api.SetCommands(commands); err != nil {
		b.log.Warn("Failed to publish command menu", "error", err)
	}
	b.log.Info("Bot started", "username", b.api.Me.Username, "admins", b.admins.Len())
	b.api.Start()
}

func (b *Bot) Stop() {
	b.api.Stop()
}

func (b *Bot) register() {
	b.api.Handle("/start", b.handleStart)
	b.api.Handle("/help", b.handleHelp)
	b.api.Handle("/stats", b.handleStats)

	// Everything else that carries text is a suggestion.
	b.api.Handle(tele.OnText, b.handleText)
}

func (b *Bot) handleStart(c tele.Context) error {
	return c.Send(msgWelcome, &tele.SendOptions{ParseMode: tele.ModeMarkdown})
}

func (b *Bot) handleHelp(c tele.Context) error {
	return c.Send(msgHelp, &tele.SendOptions{ParseMode: tele.ModeMarkdown})
}

// handleText relays a suggestion to every admin without revealing who sent
// it. The sender is always told it was delivered, even if some or all admin
// sends failed.
func (b *Bot) handleText(c tele.Context) error {
	sender := c.Sender()
	text := c.Text()
	if sender == nil || text == "" {
		return nil
	}
	// Unregistered commands fall through to OnText.
	if isCommand(c) {
		return nil
	}

	if b.admins.Contains(sender.ID) {
		return c.Send(msgAdminRefused)
	}

	report := b.forward(text)
	b.record(report)

	return c.Send(msgConfirmed)
}

// isCommand reports whether the message opens with a bot command, as opposed
// to plain text that happens to start with a slash.
func isCommand(c tele.Context) bool {
	if m := c.Message(); m != nil {
		for _, e := range m.Entities {
			if e.Type == tele.EntityCommand && e.Offset == 0 {
				return true
			}
		}
	}
	return commandRx.MatchString(c.Text())
}

func (b *Bot) forward(text string) store.Report {
	msg, opts := suggestion(text)

	var report store.Report
	for _, id := range b.admins.IDs() {
		report.Attempted++
		if _, err := b.sender.Send(&tele.User{ID: id}, msg, opts); err != nil {
			report.Failed++
			b.log.Error("Failed to deliver suggestion", "admin_id", id, "error", err)
			continue
		}
		report.Delivered++
	}

	b.log.Info("Suggestion forwarded",
		"delivered", report.Delivered, "failed", report.Failed)
	return report
}

func (b *Bot) record(report store.Report) {
	if b.stats == nil {
		return
	}
	if err := b.stats.Record(report); err != nil {
		b.log.Warn("Failed to record delivery stats", "error", err)
	}
}

// /stats, admins only
func (b *Bot) handleStats(c tele.Context) error {
	sender := c.Sender()
	if sender == nil || !b.admins.Contains(sender.ID) {
		return nil
	}
	if b.stats == nil {
		return c.Send(msgStatsDisabled)
	}

	s, err := b.stats.Stats()
	if err != nil {
		return err
	}
	return c.Send(fmt.Sprintf(msgStats, s.Suggestions, s.Delivered, s.Failed))
}

func (b *Bot) handleError(err error, c tele.Context) {
	args := []any{"error", err}
	tags := map[string]string{}
	if c != nil {
		id := c.Update().ID
		args = append(args, "update_id", id)
		tags["update_id"] = strconv.Itoa(id)
	}

	b.log.Error("Update caused error", args...)
	if b.report != nil {
		b.report(err, tags)
	}
}
