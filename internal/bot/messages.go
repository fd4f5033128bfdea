package bot

import (
	"unicode/utf16"

	tele "gopkg.in/telebot.v3"
)

const (
	msgWelcome = "👋  *Anonymous Suggest Bot* ga xush kelibsiz.\n" +
		"Har qanday fikr‑mulohazangizni yozib yuboring — u anonim tarzda administratorlarga yetkaziladi."

	msgHelp = "💡  Anonim taklif yuborish uchun shunchaki matn yozing va jo‘nating.\n" +
		"•  `/start` – xush kelibsiz xabarini ko‘rish\n" +
		"•  `/help` – yordam oynasi"

	msgAdminRefused = "🛑  Adminlar anonim taklif yubora olmaydi."
	msgConfirmed    = "✅  Yuborildi! Taklifingiz adminlarga yetib bordi."

	msgStats         = "📊  Takliflar: %d\n✅  Yetkazildi: %d\n⚠️  Yetkazilmadi: %d"
	msgStatsDisabled = "📊  Statistika o‘chirilgan (STATS_DB berilmagan)."

	suggestionBanner = "📬  Yangi anonim taklif"
)

var commands = []tele.Command{
	{Text: "start", Description: "Xush kelibsiz xabari"},
	{Text: "help", Description: "Yordam"},
}

// suggestion renders the message admins receive. The user's text is kept
// verbatim; only the banner is bold, via an entity rather than parse mode, so
// stray Markdown in the text can't make Telegram reject the message.
func suggestion(text string) (string, *tele.SendOptions) {
	msg := suggestionBanner + "\n\n" + text
	opts := &tele.SendOptions{
		DisableWebPagePreview: true,
		Entities: tele.Entities{{
			Type:   tele.EntityBold,
			Offset: 0,
			Length: len(utf16.Encode([]rune(suggestionBanner))),
		}},
	}
	return msg, opts
}
