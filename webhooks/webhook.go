package webhooks

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// turnTimeout bounds one webhook turn end to end, covering both the
// classification and lookup calls.
const turnTimeout = 60 * time.Second

// Engine produces the reply text for one inbound message.
type Engine interface {
	Reply(ctx context.Context, sender, body string) string
}

// Sender pushes operator-initiated outbound messages.
type Sender interface {
	SendWhatsAppMessage(ctx context.Context, to, body string) error
}

// RegisterRoutes mounts the Twilio webhook and the operator send endpoint.
func RegisterRoutes(app *fiber.App, engine Engine, sender Sender) {
	app.Post("/webhook", handleInboundMessage(engine))
	app.Post("/api/messages", handleSendMessage(sender))
}

// handleInboundMessage processes one Twilio WhatsApp webhook POST and
// answers with TwiML. Failures inside the engine become chat replies;
// only a missing sender or an encoding bug produce an HTTP error.
func handleInboundMessage(engine Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inbound := InboundMessage{
			From: c.FormValue("From"),
			Body: c.FormValue("Body"),
		}

		if inbound.From == "" {
			slog.Warn("Webhook request without sender")
			return c.SendStatus(fiber.StatusBadRequest)
		}

		turnID := uuid.NewString()
		slog.Info("Handling message",
			"turnID", turnID,
			"sender", inbound.From,
			"length", len(inbound.Body),
		)

		ctx, cancel := context.WithTimeout(c.Context(), turnTimeout)
		defer cancel()

		reply := engine.Reply(ctx, inbound.From, inbound.Body)

		body, err := TwiMLResponse{Message: reply}.Encode()
		if err != nil {
			slog.Error("Failed to encode TwiML", "turnID", turnID, "error", err)
			return c.SendStatus(fiber.StatusInternalServerError)
		}

		slog.Info("Reply sent", "turnID", turnID, "sender", inbound.From, "replyLength", len(reply))

		c.Set(fiber.HeaderContentType, "text/xml")
		return c.Send(body)
	}
}

// handleSendMessage lets an operator push a WhatsApp message to a number.
func handleSendMessage(sender Sender) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SendRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		if req.To == "" || req.Body == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "to and body are required",
			})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer cancel()

		if err := sender.SendWhatsAppMessage(ctx, req.To, req.Body); err != nil {
			slog.Error("Failed to send operator message", "to", req.To, "error", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(fiber.Map{"status": "sent"})
	}
}
