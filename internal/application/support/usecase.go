package support

import (
	"context"
	"strings"

	"github.com/dias012rrr/fooddelivery/internal/domain"
	"github.com/dias012rrr/fooddelivery/internal/domain/repository"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

// ChatReply is the canned response of the support chat widget. The widget
// is a stub: there is no live agent behind it.
const ChatReply = "Thank you for your message. We will consider your problem!"

// UseCase relays support requests and answers the chat stub.
type UseCase struct {
	support repository.SupportRepository
	log     *logger.Logger
}

// NewUseCase builds the support use case.
func NewUseCase(support repository.SupportRepository, log *logger.Logger) *UseCase {
	return &UseCase{support: support, log: log}
}

// Send relays a support request with its attachments. Email and message
// are both required; nothing is sent otherwise.
func (uc *UseCase) Send(ctx context.Context, email, message string, attachments []repository.Attachment) error {
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if email == "" || message == "" {
		return domain.ErrInvalidInput
	}

	if err := uc.support.Send(ctx, email, message, attachments); err != nil {
		uc.log.Error().Err(err).Str("email", email).Msg("support request failed")
		return err
	}
	uc.log.Info().Str("email", email).Int("attachments", len(attachments)).Msg("support request sent")
	return nil
}

// Chat returns the canned reply for a non-empty message.
func (uc *UseCase) Chat(message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.ErrInvalidInput
	}
	return ChatReply, nil
}
