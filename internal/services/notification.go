package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/models"
	"github.com/discool/storefront/pkg/sendGrid"
)

type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, contact models.Contact, order *models.PlacedOrder) error
}

type notificationService struct {
	emailService sendGrid.EmailService
}

// NewNotificationService sends nothing when emailService is nil.
func NewNotificationService(emailService sendGrid.EmailService) NotificationService {
	return &notificationService{emailService: emailService}
}

func (n *notificationService) SendOrderConfirmation(ctx context.Context, contact models.Contact, order *models.PlacedOrder) error {

	if n.emailService == nil || contact.Email == "" {
		return nil
	}

	total := order.Total.StringFixed(2)

	msg := &models.EmailMessage{
		To:      contact.Email,
		ToName:  contact.Name,
		Subject: fmt.Sprintf("Discool: pedido %s recebido", order.OrderID),
		Content: fmt.Sprintf("Olá, %s!\n\nRecebemos seu pedido %s no valor de R$ %s. Assim que o pagamento for confirmado, avisaremos você.",
			contact.Name, order.OrderID, total),
		HTMLContent: fmt.Sprintf("<p>Olá, %s!</p><p>Recebemos seu pedido <strong>%s</strong> no valor de <strong>R$ %s</strong>.</p>",
			html.EscapeString(contact.Name), html.EscapeString(order.OrderID), total),
	}

	if err := n.emailService.Send(ctx, msg); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Order confirmation e-mail failed",
			slog.String("order_id", order.OrderID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("sending order confirmation: %w", err)
	}

	return nil
}
