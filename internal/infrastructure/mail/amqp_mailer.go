package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rabbitmq/amqp091-go"
)

// AMQPConfig destino de los mensajes de correo.
type AMQPConfig struct {
	URL        string
	Exchange   string
	RoutingKey string
	From       string
	ResetURL   string
	// MaxDialTime tiempo total de reintentos de conexión al arrancar (0 = 30s).
	MaxDialTime time.Duration
}

// PasswordResetMessage mensaje que consume el worker de correo.
type PasswordResetMessage struct {
	Type    string    `json:"type"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Link    string    `json:"link"`
	HTML    string    `json:"html"`
	SentAt  time.Time `json:"sent_at"`
}

// AMQPMailer publica un mensaje password_reset en un exchange direct; otro proceso hace la entrega.
type AMQPMailer struct {
	cfg     AMQPConfig
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// NewAMQPMailer conecta con backoff exponencial y declara el exchange.
func NewAMQPMailer(ctx context.Context, cfg AMQPConfig) (*AMQPMailer, error) {
	if cfg.MaxDialTime <= 0 {
		cfg.MaxDialTime = 30 * time.Second
	}
	conn, err := backoff.Retry(ctx, func() (*amqp091.Connection, error) {
		return amqp091.Dial(cfg.URL)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxElapsedTime(cfg.MaxDialTime))
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPMailer{cfg: cfg, conn: conn, channel: channel}, nil
}

func (m *AMQPMailer) SendPasswordReset(ctx context.Context, to, token string, redirectURL *string) error {
	link, err := ResetLink(m.cfg.ResetURL, redirectURL, token)
	if err != nil {
		return err
	}
	body, err := json.Marshal(PasswordResetMessage{
		Type:    "password_reset",
		From:    m.cfg.From,
		To:      to,
		Subject: resetSubject,
		Link:    link,
		HTML:    resetBody(link),
		SentAt:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = m.channel.PublishWithContext(ctx,
		m.cfg.Exchange,   // exchange
		m.cfg.RoutingKey, // routing key
		false,            // mandatory
		false,            // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

// Close cierra canal y conexión.
func (m *AMQPMailer) Close() error {
	if m.channel != nil {
		m.channel.Close()
	}
	if m.conn != nil {
		return m.conn.Close()
	}
	return nil
}
