// internal/writer/telegram/client_test.go
package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	assert.Equal(t, "📊 Queue Update:\n- Players in Queue: 1/8", PlainText("📊 **Queue Update:**\n- Players in Queue: 1/8"))
	assert.Equal(t, "no markup", PlainText("no markup"))
}

func TestNew_RequiresTokenAndChat(t *testing.T) {
	_, err := New(Config{Token: "t"})
	assert.Error(t, err)

	_, err = New(Config{ChatID: 1})
	assert.Error(t, err)
}
