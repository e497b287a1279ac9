// Package i18n holds the pluralized message printer used by effect and
// duel descriptions.
package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// BaseLocale is the only locale messages are registered for.
const BaseLocale = "en-US"

const turnsKey = "%d turns"

var printer = newPrinter()

func newPrinter() *message.Printer {
	tag := language.MustParse(BaseLocale)
	mustSet(tag, turnsKey, plural.Selectf(1, "%d",
		"=1", "%d turn",
		"other", "%d turns",
	))
	return message.NewPrinter(tag)
}

func mustSet(tag language.Tag, key string, msg catalog.Message) {
	if err := message.Set(tag, key, msg); err != nil {
		panic("i18n: registering " + key + ": " + err.Error())
	}
}

// Turns renders a turn count: "1 turn", "3 turns".
func Turns(n int) string {
	return printer.Sprintf(turnsKey, n)
}
