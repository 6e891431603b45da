package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSMTPSender(t *testing.T) {
	sender := NewSMTPSender("smtp.example.com", 587, "alerts@example.com", "user", "pass")

	assert.Equal(t, "smtp.example.com:587", sender.addr)
	assert.Equal(t, "alerts@example.com", sender.from)
	assert.NotNil(t, sender.auth)
}

func TestNewSMTPSender_NoAuth(t *testing.T) {
	sender := NewSMTPSender("localhost", 25, "noreply@wildwatch.local", "", "")

	assert.Equal(t, "localhost:25", sender.addr)
	assert.Nil(t, sender.auth)
}
