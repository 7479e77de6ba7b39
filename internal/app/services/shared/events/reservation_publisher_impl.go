package events

import (
	"context"
	"riraku-service/internal/app/config"
	"riraku-service/internal/app/contracts"
	"riraku-service/internal/pkg/constvars"
	"riraku-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type reservationPublisher struct {
	connection *amqp091.Connection
	queueName  string
	Log        *zap.Logger
}

func NewReservationPublisher(connection *amqp091.Connection, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.EventPublisher {
	return &reservationPublisher{
		connection: connection,
		queueName:  internalConfig.App.ReservationEventQueue,
		Log:        logger,
	}
}

func (p *reservationPublisher) PublishReservationConfirmed(ctx context.Context, event *contracts.ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(p.queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	err = channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        body,
	})
	if err != nil {
		p.Log.Error("reservationPublisher.PublishReservationConfirmed failed",
			zap.String(constvars.LoggingQueueNameKey, p.queueName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.Log.Info("reservationPublisher.PublishReservationConfirmed succeeded",
		zap.String(constvars.LoggingQueueNameKey, p.queueName),
		zap.String(constvars.LoggingReservationIDKey, event.ReservationID),
	)
	return nil
}
