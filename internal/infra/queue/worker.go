package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/PrinceSD2/lms-sub001/internal/entity"
)

// AlertNotifier is the contract for whoever delivers hot-lead alerts
// (SMTP today, anything else tomorrow).
type AlertNotifier interface {
	NotifyHotLead(ctx context.Context, payload LeadCapturedPayload) error
}

// Worker drains the lead-alerts queue and raises a notification for every
// hot lead. Warm and cold leads are acked without action.
type Worker struct {
	Channel  *amqp.Channel
	Notifier AlertNotifier
	Log      *zap.Logger
}

func NewWorker(ch *amqp.Channel, notifier AlertNotifier, log *zap.Logger) *Worker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Worker{Channel: ch, Notifier: notifier, Log: log}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		w.Log.Fatal("failed to register queue consumer", zap.Error(err))
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCapturedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				w.Log.Error("malformed lead captured message, sending to DLQ", zap.Error(err))
				d.Nack(false, false)
				continue
			}

			if err := w.process(context.Background(), payload); err != nil {
				w.Log.Error("lead alert failed, sending to DLQ",
					zap.String("lead_id", payload.LeadID),
					zap.Error(err),
				)
				d.Nack(false, false)
				continue
			}
			d.Ack(false)
		}
	}()

	w.Log.Info("lead alert worker running", zap.String("queue", queueName))
	<-forever
}

func (w *Worker) process(ctx context.Context, payload LeadCapturedPayload) error {
	if payload.Tier != entity.TierHot {
		w.Log.Debug("lead below alert threshold",
			zap.String("lead_id", payload.LeadID),
			zap.String("tier", payload.Tier),
		)
		return nil
	}

	w.Log.Info("hot lead captured, notifying sales",
		zap.String("lead_id", payload.LeadID),
		zap.String("source", payload.Source),
		zap.Int("completion", payload.CompletionPercentage),
	)
	return w.Notifier.NotifyHotLead(ctx, payload)
}
