package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dias012rrr/fooddelivery/internal/application/dto"
	"github.com/dias012rrr/fooddelivery/internal/application/support"
	"github.com/dias012rrr/fooddelivery/internal/domain/repository"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

// SupportHandler relays support requests and answers the chat widget.
type SupportHandler struct {
	supports *support.UseCase
	log      *logger.Logger
}

// NewSupportHandler builds the support handler.
func NewSupportHandler(supports *support.UseCase, log *logger.Logger) *SupportHandler {
	return &SupportHandler{supports: supports, log: log}
}

// Send forwards the multipart support form: email and message fields plus
// any number of file attachments.
func (h *SupportHandler) Send(c *fiber.Ctx) error {
	email := c.FormValue("email")
	message := c.FormValue("message")

	var attachments []repository.Attachment
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["attachments"] {
			f, err := fh.Open()
			if err != nil {
				h.log.Warn().Err(err).Str("filename", fh.Filename).Msg("attachment open failed")
				continue
			}
			defer f.Close()
			attachments = append(attachments, repository.Attachment{Filename: fh.Filename, Reader: f})
		}
	}

	if err := h.supports.Send(c.Context(), email, message, attachments); err != nil {
		return fail(c, err, "Please fill in the email and message fields.")
	}
	return c.JSON(dto.NoticeResponse{Notice: "Your request has been sent. We will contact you soon!"})
}

// Chat answers the widget with its canned reply.
func (h *SupportHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request."})
	}

	reply, err := h.supports.Chat(in.Message)
	if err != nil {
		return fail(c, err, "Please type a message.")
	}
	return c.JSON(dto.ChatResponse{Reply: reply})
}
