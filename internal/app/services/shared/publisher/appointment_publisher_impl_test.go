package publisher

import (
	"context"
	"errors"
	"testing"
	"time"

	"doccare-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func TestAppointmentPublisher_PublishAppointmentBooked(t *testing.T) {
	event := &models.AppointmentBookedEvent{
		Event:         "appointment.booked",
		AppointmentID: "a-1",
		TransactionID: "t-1",
		Amount:        500,
		OccurredAt:    time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC),
	}

	t.Run("publishes a persistent JSON message", func(t *testing.T) {
		channel := new(mockChannel)
		var published amqp091.Publishing
		channel.On("PublishWithContext", mock.Anything, "", "appointments", false, false, mock.AnythingOfType("amqp091.Publishing")).
			Run(func(args mock.Arguments) { published = args.Get(5).(amqp091.Publishing) }).
			Return(nil)

		p := &appointmentPublisher{Channel: channel, Queue: "appointments", Log: zap.NewNop()}
		err := p.PublishAppointmentBooked(context.Background(), event)

		require.NoError(t, err)
		assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
		assert.Equal(t, "t-1", published.MessageId)

		var decoded models.AppointmentBookedEvent
		require.NoError(t, json.Unmarshal(published.Body, &decoded))
		assert.Equal(t, "a-1", decoded.AppointmentID)
		assert.Equal(t, int64(500), decoded.Amount)
	})

	t.Run("broker failure is returned", func(t *testing.T) {
		channel := new(mockChannel)
		channel.On("PublishWithContext", mock.Anything, "", "appointments", false, false, mock.Anything).
			Return(errors.New("channel closed"))

		p := &appointmentPublisher{Channel: channel, Queue: "appointments", Log: zap.NewNop()}
		err := p.PublishAppointmentBooked(context.Background(), event)

		assert.Error(t, err)
	})
}
