package services

import (
	"fmt"
	"net/url"
	"strings"
)

// NotificationService builds pre-filled messaging deep links. It never
// delivers anything and never blocks the caller; the returned link is handed
// to the client, which decides whether to open it.
type NotificationService interface {
	BuildLink(phone, message string) (string, error)
}

// WhatsAppService builds wa.me deep links
type WhatsAppService struct{}

var notificationServiceInstance NotificationService = &WhatsAppService{}

// GetNotificationService returns the notification service instance
func GetNotificationService() NotificationService {
	return notificationServiceInstance
}

// SetNotificationService sets the notification service instance (primarily for testing)
func SetNotificationService(service NotificationService) {
	notificationServiceInstance = service
}

// BuildLink returns a wa.me link that opens a chat with the given phone
// number and the message pre-filled
func (s *WhatsAppService) BuildLink(phone, message string) (string, error) {
	digits := normalizePhone(phone)
	if digits == "" {
		return "", fmt.Errorf("phone number %q contains no digits", phone)
	}

	link := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + digits,
		RawQuery: url.Values{"text": []string{message}}.Encode(),
	}
	return link.String(), nil
}

// normalizePhone strips everything except digits. wa.me expects the number
// in international format without "+", spaces or dashes.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
