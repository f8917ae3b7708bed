package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ziflex/lecho/v3"
)

const (
	contentTypeJSON       = "application/json"
	tokenMintedRoutingKey = "token.minted"
)

// Client publishes tokenization events to a topic exchange so other
// systems can react without polling the API.
type Client interface {
	PublishTokenMinted(ctx context.Context, payload interface{}) error
	Close() error
}

type DefaultClient struct {
	amqpClient AMQPClient

	tokenExchange string

	logger *lecho.Logger
}

type ClientOption = func(client *DefaultClient)

func WithLogger(logger *lecho.Logger) ClientOption {
	return func(client *DefaultClient) {
		client.logger = logger
	}
}

func WithTokenExchange(exchange string) ClientOption {
	return func(client *DefaultClient) {
		client.tokenExchange = exchange
	}
}

func NewClient(amqpClient AMQPClient, options ...ClientOption) (Client, error) {
	client := &DefaultClient{
		amqpClient:    amqpClient,
		tokenExchange: "vaulthive_token",
	}

	for _, opt := range options {
		opt(client)
	}

	err := client.amqpClient.ExchangeDeclare(
		client.tokenExchange,
		"topic",
		// durable exchanges survive server restarts
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (client *DefaultClient) Close() error {
	return client.amqpClient.Close()
}

func (client *DefaultClient) PublishTokenMinted(ctx context.Context, payload interface{}) error {
	body := new(bytes.Buffer)
	if err := json.NewEncoder(body).Encode(payload); err != nil {
		return err
	}

	return client.amqpClient.PublishWithContext(ctx,
		client.tokenExchange,
		tokenMintedRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: contentTypeJSON,
			Body:        body.Bytes(),
		},
	)
}
