package messaging

import (
	"doccare-service/internal/app/config"
	"log"
	"net"
	"net/url"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	rabbitConfig := driverConfig.RabbitMQ
	conn, err := amqp091.DialConfig(amqpURL(rabbitConfig), amqpConfig(rabbitConfig))
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ at %s:%s: %s", rabbitConfig.Host, rabbitConfig.Port, err.Error())
	}
	log.Printf("Successfully connected to rabbitMQ as %q", rabbitConfig.ConnectionName)
	return conn
}

func amqpURL(rabbitConfig config.RabbitMQ) string {
	// the default vhost "/" must be sent percent-encoded
	u := url.URL{
		Scheme:  "amqp",
		User:    url.UserPassword(rabbitConfig.Username, rabbitConfig.Password),
		Host:    net.JoinHostPort(rabbitConfig.Host, rabbitConfig.Port),
		Path:    "/" + rabbitConfig.VHost,
		RawPath: "/" + url.PathEscape(rabbitConfig.VHost),
	}
	return u.String()
}

func amqpConfig(rabbitConfig config.RabbitMQ) amqp091.Config {
	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(rabbitConfig.ConnectionName)

	dialTimeout := time.Duration(rabbitConfig.DialTimeoutInSeconds) * time.Second
	return amqp091.Config{
		Heartbeat:  time.Duration(rabbitConfig.HeartbeatInSeconds) * time.Second,
		Locale:     "en_US",
		Properties: properties,
		Dial:       amqp091.DefaultDial(dialTimeout),
	}
}
