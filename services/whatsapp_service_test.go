package services

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLink(t *testing.T) {
	service := &WhatsAppService{}

	tests := []struct {
		name     string
		phone    string
		expected string
	}{
		{"bare digits", "966501234567", "966501234567"},
		{"international format", "+966 50 123 4567", "966501234567"},
		{"dashes and parens", "+966-(50)-123-4567", "966501234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := service.BuildLink(tt.phone, "مرحبا")
			assert.NoError(t, err)

			parsed, err := url.Parse(link)
			assert.NoError(t, err)
			assert.Equal(t, "https", parsed.Scheme)
			assert.Equal(t, "wa.me", parsed.Host)
			assert.Equal(t, "/"+tt.expected, parsed.Path)
			assert.Equal(t, "مرحبا", parsed.Query().Get("text"))
		})
	}
}

func TestBuildLinkEncodesMessage(t *testing.T) {
	service := &WhatsAppService{}

	message := "طلب جديد #123\nالإجمالي: 148.50 ريال & شكراً"
	link, err := service.BuildLink("966501234567", message)
	assert.NoError(t, err)

	parsed, err := url.Parse(link)
	assert.NoError(t, err)
	// The message survives a URL roundtrip byte for byte
	assert.Equal(t, message, parsed.Query().Get("text"))
}

func TestBuildLinkRequiresDigits(t *testing.T) {
	service := &WhatsAppService{}

	for _, phone := range []string{"", "+++", "abc", " - "} {
		_, err := service.BuildLink(phone, "مرحبا")
		assert.Error(t, err, "phone %q", phone)
	}
}

func TestMockNotificationService(t *testing.T) {
	mock := NewMockNotificationService()

	link, err := mock.BuildLink("966501234567", "أهلا")
	assert.NoError(t, err)
	assert.NotEmpty(t, link)
	assert.Len(t, mock.Calls(), 1)

	mock.FailNext = true
	_, err = mock.BuildLink("966501234567", "أهلا")
	assert.Error(t, err)

	// Failure only applies once
	_, err = mock.BuildLink("966501234567", "أهلا")
	assert.NoError(t, err)
}
