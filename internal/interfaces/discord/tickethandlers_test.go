package discord

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketUC "github.com/haven-rp/warden/internal/application/ticket/usecases"
	"github.com/haven-rp/warden/internal/domain/moderation"
	"github.com/haven-rp/warden/internal/shared/logger"
)

func TestHandleReasonModalEchoesReason(t *testing.T) {
	b, rt := newTestBot(t, moderation.NewSpamGuard(10*time.Second, 5))
	b.usecases.CloseWithReason = ticketUC.NewCloseWithReasonUseCase(
		stubTicketRepo{}, b.Adapter(), stubReasonLog{}, logger.NewLogger())

	reason := "resolved over voice"
	b.handleReasonModal(context.Background(), b.session,
		modalSubmission(customIDReasonModal, "close_reason", reason))

	var reply *recordedRequest
	for _, req := range rt.recorded() {
		if strings.Contains(req.Path, "/callback") {
			r := req
			reply = &r
			break
		}
	}
	require.NotNil(t, reply, "the modal submission must be acknowledged")
	assert.Contains(t, reply.Body, reason)
}
