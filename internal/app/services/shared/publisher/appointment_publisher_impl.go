package publisher

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel is the subset of *amqp091.Channel used for publishing.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type appointmentPublisher struct {
	Channel amqpChannel
	Queue   string
	Log     *zap.Logger
}

var (
	appointmentPublisherInstance contracts.AppointmentEventPublisher
	onceAppointmentPublisher     sync.Once
	appointmentPublisherError    error
)

func NewAppointmentPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.AppointmentEventPublisher, error) {
	onceAppointmentPublisher.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			appointmentPublisherError = err
			return
		}

		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			appointmentPublisherError = err
			return
		}

		appointmentPublisherInstance = &appointmentPublisher{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
	})
	return appointmentPublisherInstance, appointmentPublisherError
}

func (p *appointmentPublisher) PublishAppointmentBooked(ctx context.Context, event *models.AppointmentBookedEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("appointmentPublisher.PublishAppointmentBooked called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, event.AppointmentID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("appointmentPublisher.PublishAppointmentBooked error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.TransactionID,
		Type:         event.Event,
		Headers: amqp091.Table{
			"message_type": "JSON",
			"request_id":   requestID,
		},
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("appointmentPublisher.PublishAppointmentBooked error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublish(err, p.Queue)
	}

	p.Log.Info("appointmentPublisher.PublishAppointmentBooked succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
	)
	return nil
}
