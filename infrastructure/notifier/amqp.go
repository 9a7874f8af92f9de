package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

const publishTimeout = 5 * time.Second

// DailyCloseRoutingKey é usada no resumo publicado pelo agendador de fechamento diário
const DailyCloseRoutingKey = "ledger.daily_close"

// AMQPPublisher publica os eventos dos ledgers em um exchange topic
type AMQPPublisher struct {
	mu         sync.Mutex
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	exchange   string
	routingKey string
}

func NewAMQPPublisher(cfg config.AMQP) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar no AMQP")
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "erro ao abrir canal AMQP")
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, errors.Wrapf(err, "erro ao declarar exchange %s", cfg.Exchange)
	}

	return &AMQPPublisher{
		conn:       conn,
		channel:    channel,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
	}, nil
}

// New retorna o publisher AMQP quando há URL configurada, senão o Noop
func New(cfg config.AMQP) (Publisher, error) {
	if cfg.URL == "" {
		logrus.Info("AMQP_URL não configurada, notificações de ledger desativadas")
		return NewNoop(), nil
	}
	return NewAMQPPublisher(cfg)
}

func (p *AMQPPublisher) PublishLedgerChanged(ctx context.Context, change domain.LedgerChange) error {
	messageID, err := p.publish(ctx, p.routingKey, "ledger.changed", change)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"ledger":     change.Ledger,
		"key":        change.Key,
		"message_id": messageID,
	}).Debug("notifier: evento ledger.changed publicado")

	return nil
}

func (p *AMQPPublisher) PublishDailyClose(ctx context.Context, summary domain.DailyClose) error {
	messageID, err := p.publish(ctx, DailyCloseRoutingKey, DailyCloseRoutingKey, summary)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"date":       summary.Date,
		"message_id": messageID,
	}).Info("notifier: fechamento diário publicado")

	return nil
}

func (p *AMQPPublisher) publish(ctx context.Context, routingKey, messageType string, event any) (string, error) {
	body, err := utils.MarshalJSON(event)
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar evento")
	}

	messageID, err := utils.GenerateID(21)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    messageID,
			Timestamp:    time.Now(),
			Type:         messageType,
			Body:         body,
		},
	)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao publicar evento %s", messageType)
	}

	return messageID, nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
