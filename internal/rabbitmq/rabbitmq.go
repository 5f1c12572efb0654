package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	POST_CREATED_QUEUE = "post.created"
	POST_FLAGGED_QUEUE = "post.flagged"
)

var queues = []string{
	POST_CREATED_QUEUE,
	POST_FLAGGED_QUEUE,
}

// MQConn publishes JSON messages to durable queues on the default exchange.
type MQConn struct {
	conn *amqp.Connection
	mu   sync.Mutex
	ch   *amqp.Channel
}

func New(url string) (*MQConn, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	for _, queue := range queues {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, err
		}
	}

	return &MQConn{
		conn: conn,
		ch:   ch,
	}, nil
}

// Publish encodes body as JSON and sends it to queue. amqp channels are not
// safe for concurrent publishing, so calls are serialized.
func (mq *MQConn) Publish(ctx context.Context, queue string, body interface{}) error {
	bodyJSON, err := json.Marshal(body)
	if err != nil {
		return err
	}

	mq.mu.Lock()
	defer mq.mu.Unlock()

	return mq.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         bodyJSON,
	})
}

func (mq *MQConn) Close() error {
	if err := mq.ch.Close(); err != nil {
		mq.conn.Close()
		return err
	}
	return mq.conn.Close()
}
