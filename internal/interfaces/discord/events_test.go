package discord

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/haven-rp/warden/internal/domain/moderation"
)

func TestOnMessageOffFormatMessagesFeedGuard(t *testing.T) {
	guard := moderation.NewSpamGuard(10*time.Second, 5)
	b, rt := newTestBot(t, guard)

	// Below the threshold: every message must be deleted and still counted.
	for n := 0; n < 5; n++ {
		b.onMessage(b.session, identityMessage(fmt.Sprintf("msg-%d", n), "user-1", "free text"))
	}

	assert.Equal(t, 1, guard.Tracked())

	deletes := 0
	for _, req := range rt.recorded() {
		if req.Method == http.MethodDelete {
			deletes++
		}
	}
	assert.Equal(t, 5, deletes)
}

func TestOnMessageFloodOfOffFormatMessagesTriggersTimeout(t *testing.T) {
	guard := moderation.NewSpamGuard(10*time.Second, 5)
	b, rt := newTestBot(t, guard)

	for n := 0; n < 20; n++ {
		b.onMessage(b.session, identityMessage(fmt.Sprintf("msg-%d", n), "user-1", "join my server"))
	}

	timeouts := 0
	for _, req := range rt.recorded() {
		if req.Method == http.MethodPatch && strings.Contains(req.Path, "/members/user-1") {
			timeouts++
		}
	}
	assert.Greater(t, timeouts, 0, "a burst of off-format messages must reach enforcement")
}

func TestOnMessageSentinelCountsWithoutDeletion(t *testing.T) {
	guard := moderation.NewSpamGuard(10*time.Second, 5)
	b, rt := newTestBot(t, guard)

	for n := 0; n < 3; n++ {
		b.onMessage(b.session, identityMessage(fmt.Sprintf("msg-%d", n), "user-1", "."))
	}

	assert.Equal(t, 1, guard.Tracked())
	assert.Empty(t, rt.recorded())
}

func TestOnMessageIgnoresBotsAndForeignChannels(t *testing.T) {
	guard := moderation.NewSpamGuard(10*time.Second, 5)
	b, rt := newTestBot(t, guard)

	botMsg := identityMessage("msg-1", "bot-1", "beep")
	botMsg.Author.Bot = true
	b.onMessage(b.session, botMsg)

	elsewhere := identityMessage("msg-2", "user-1", "hello")
	elsewhere.ChannelID = "chan-general"
	b.onMessage(b.session, elsewhere)

	foreign := identityMessage("msg-3", "user-1", "hello")
	foreign.GuildID = "guild-2"
	b.onMessage(b.session, foreign)

	assert.Equal(t, 0, guard.Tracked())
	assert.Empty(t, rt.recorded())
}
