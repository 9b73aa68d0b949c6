package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-secours/app/factory"
)

const (
	RoutingSubscriptionCreated     = "subscription.created"
	RoutingSubscriptionDeactivated = "subscription.deactivated"
	RoutingTokensPurchased         = "token.purchased"
	RoutingRescueRequested         = "rescue.requested"
	RoutingRescueApproved          = "rescue.approved"
	RoutingRescueRejected          = "rescue.rejected"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
	Close()
}

// NoopPublisher drops events. Used when no broker is configured or reachable.
type NoopPublisher struct {
	logger logrus.FieldLogger
}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{logger: factory.NewModuleLogger("events")}
}

func (p *NoopPublisher) Publish(_ context.Context, routingKey string, _ interface{}) error {
	p.logger.WithField("routing_key", routingKey).Debug("event publish skipped")
	return nil
}

func (p *NoopPublisher) Close() {}

// AMQPPublisher publishes JSON events to a durable topic exchange.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   logrus.FieldLogger
}

func NewAMQPPublisher(amqpURL, exchange string) (*AMQPPublisher, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp.DialConfig(cleanURL, amqp.Config{Dial: amqp.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := declareExchange(ch, exchange); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &AMQPPublisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		logger:   factory.NewModuleLogger("events"),
	}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	if err == nil {
		return nil
	}

	// One retry on a fresh channel; a closed channel is the usual cause.
	p.logger.WithError(err).WithField("routing_key", routingKey).Warn("publish failed; reopening channel")
	ch, chErr := p.conn.Channel()
	if chErr != nil {
		return chErr
	}
	if err := declareExchange(ch, p.exchange); err != nil {
		_ = ch.Close()
		return err
	}
	p.channel = ch
	return p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
}

func (p *AMQPPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

func declareExchange(ch *amqp.Channel, exchange string) error {
	return ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil)
}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}
