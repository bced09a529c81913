package chat

import "regexp"

// Intent is the classified purpose of an inbound chat message. It selects
// which response strategy handles the message.
type Intent string

const (
	IntentHours       Intent = "hours"
	IntentReservation Intent = "reservation"
	IntentContact     Intent = "contact"
	IntentMenu        Intent = "menu"
	IntentGeneral     Intent = "general"
)

type intentRule struct {
	intent  Intent
	pattern *regexp.Regexp
}

// Rule order is part of the contract: the first matching rule wins, so a
// message mentioning both opening hours and the menu is an hours question.
var intentRules = []intentRule{
	{IntentHours, regexp.MustCompile(`(?i)\b(hours|open|close|timing|when)\b`)},
	{IntentReservation, regexp.MustCompile(`(?i)\b(reservation|book|table|reserve)\b`)},
	{IntentContact, regexp.MustCompile(`(?i)\b(contact|phone|address|number|locat(?:ion|ed))\b`)},
	{IntentMenu, regexp.MustCompile(`(?i)\b(menu|dish|food|eat|spicy|vegetarian|chicken|dessert|drink|biryani|pizza|sweet|salad|soup|appetizer|main course|beverage|curry)\b`)},
}

// Classify maps a message to exactly one intent. It is a pure function:
// no rule mutates state and the default is IntentGeneral.
func Classify(text string) Intent {
	for _, rule := range intentRules {
		if rule.pattern.MatchString(text) {
			return rule.intent
		}
	}
	return IntentGeneral
}
