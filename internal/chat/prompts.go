package chat

import (
	"fmt"
	"strings"

	"github.com/smarthub/restaurant-backend/internal/menu"
)

// HoursEntry is one row of the weekly hours table. Order matters: the
// table is rendered to the model exactly as listed.
type HoursEntry struct {
	Days  string
	Hours string
}

// RestaurantInfo holds the fixed facts prompts are grounded on.
type RestaurantInfo struct {
	Name           string
	Phone          string
	Address        string
	Hours          []HoursEntry
	ReservationURL string
}

// DefaultInfo returns the restaurant facts used when config leaves them unset.
func DefaultInfo() RestaurantInfo {
	return RestaurantInfo{
		Name:    "Smart Restaurant Hub",
		Phone:   "207-8767-452",
		Address: "2443 Oak Ridge, Leander, TX",
		Hours: []HoursEntry{
			{"Monday - Tuesday", "09:00 AM - 10:00 PM"},
			{"Wednesday", "08:30 AM - 08:30 PM"},
			{"Thursday - Friday", "09:45 AM - 07:55 PM"},
			{"Saturday", "10:00 AM - 08:45 PM"},
			{"Sunday", "08:00 AM - 07:10 PM"},
			{"Holidays", "Closed"},
		},
		ReservationURL: "http://localhost:5173/reservation",
	}
}

// reservationReply is the canned answer for reservation questions; it is
// returned without a model call.
func reservationReply(info RestaurantInfo) string {
	return fmt.Sprintf("Great! You can easily reserve a table by visiting our Reservation page: %s", info.ReservationURL)
}

func hoursPrompt(info RestaurantInfo, message string) string {
	var hours strings.Builder
	for i, entry := range info.Hours {
		if i > 0 {
			hours.WriteString("\n")
		}
		hours.WriteString(entry.Days + ": " + entry.Hours)
	}
	return fmt.Sprintf(
		"You are a helpful assistant for %s. The customer asked about opening hours. Here are the hours:\n%s\nPolitely and concisely answer the customer's question %q using this information.",
		info.Name, hours.String(), message,
	)
}

func contactPrompt(info RestaurantInfo, message string) string {
	return fmt.Sprintf(
		"You are a helpful assistant for %s. The customer asked for contact information. Here are the details:\nPhone: %s\nAddress: %s\nPolitely and concisely answer the customer's question %q using this information.",
		info.Name, info.Phone, info.Address, message,
	)
}

func menuPrompt(info RestaurantInfo, message string, items []menu.GroundingItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		desc := "N/A"
		if item.Description != nil && *item.Description != "" {
			desc = *item.Description
		}
		price := "N/A"
		if item.Price != nil {
			price = fmt.Sprintf("%.2f", *item.Price)
		}
		lines = append(lines, fmt.Sprintf("- %s (%s): %s ($%s)", item.Name, item.Category, desc, price))
	}
	return fmt.Sprintf(
		"You are a friendly assistant for %s answering: %q. Based primarily on these items, give a SHORT and POLITE answer (1-2 sentences). List relevant dishes found and prices if they directly answer. If not a direct match, politely suggest browsing the full menu.\nMenu Items:\n%s",
		info.Name, message, strings.Join(lines, "\n"),
	)
}

func menuNoMatchPrompt(info RestaurantInfo, message string) string {
	return fmt.Sprintf(
		"You are a friendly assistant for %s answering: %q. I couldn't find specific items matching that. Please politely suggest browsing the full menu or asking differently. Keep the response SHORT.",
		info.Name, message,
	)
}

func generalPrompt(message string) string {
	return fmt.Sprintf("You are a helpful and friendly chat assistant. Keep your response SHORT and conversational for: %q", message)
}
