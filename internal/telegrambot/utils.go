package telegrambot

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// displayName renders a user-typed language or country name for messages
// ("french" -> "French"). Empty input stays empty.
func displayName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}

	return titleCaser.String(strings.ToLower(name))
}
