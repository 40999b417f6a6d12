package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/PrinceSD2/lms-sub001/internal/entity"
	"github.com/PrinceSD2/lms-sub001/internal/presenter"
)

// LeadCapturedPayload is the event published when a lead lands. Contact
// fields cross the broker pre-masked; consumers never see raw PII.
type LeadCapturedPayload struct {
	LeadID               string    `json:"lead_id"`
	Name                 string    `json:"name"`
	Source               string    `json:"source"`
	Tier                 string    `json:"tier"`
	CompletionPercentage int       `json:"completion_percentage"`
	MaskedEmail          string    `json:"masked_email"`
	MaskedPhone          string    `json:"masked_phone"`
	MaskedDebtAmount     string    `json:"masked_debt_amount"`
	CapturedAt           time.Time `json:"captured_at"`
}

// NewLeadCapturedPayload classifies the lead and masks its contact fields at
// the publishing boundary.
func NewLeadCapturedPayload(l *entity.Lead) LeadCapturedPayload {
	c := entity.Classify(l)
	return LeadCapturedPayload{
		LeadID:               l.ID,
		Name:                 l.Name,
		Source:               l.Source,
		Tier:                 c.Category,
		CompletionPercentage: c.CompletionPercentage,
		MaskedEmail:          presenter.MaskEmail(l.Email),
		MaskedPhone:          presenter.MaskPhone(l.Phone),
		MaskedDebtAmount:     presenter.MaskAmount(l.TotalDebtAmount),
		CapturedAt:           l.CreatedAt,
	}
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadCaptured(ctx context.Context, payload LeadCapturedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal lead captured payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish lead captured: %w", err)
	}
	return nil
}
