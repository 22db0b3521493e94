package queue

import (
    "encoding/json"
    "fmt"

    "github.com/streadway/amqp"
)

// ExportsTopic is the queue carrying export audit events.
const ExportsTopic = "cv_exports"

// AMQPQueue publishes payloads to a durable RabbitMQ queue.
type AMQPQueue struct {
    conn *amqp.Connection
    ch   *amqp.Channel
}

func NewAMQPQueue(url string) (*AMQPQueue, error) {
    conn, err := amqp.Dial(url)
    if err != nil {
        return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
    }

    ch, err := conn.Channel()
    if err != nil {
        conn.Close()
        return nil, fmt.Errorf("failed to open queue channel: %w", err)
    }

    return &AMQPQueue{conn: conn, ch: ch}, nil
}

// Publish marshals the payload as JSON and sends it to the named queue,
// declaring it durable first.
func (q *AMQPQueue) Publish(topic string, payload any) error {
    queue, err := q.ch.QueueDeclare(
        topic,
        true,  // durable
        false, // delete when unused
        false, // exclusive
        false, // no-wait
        nil,   // arguments
    )
    if err != nil {
        return fmt.Errorf("failed to declare queue %s: %w", topic, err)
    }

    body, err := json.Marshal(payload)
    if err != nil {
        return err
    }

    return q.ch.Publish(
        "",
        queue.Name,
        false,
        false,
        amqp.Publishing{
            ContentType: "application/json",
            Body:        body,
        },
    )
}

// Subscribe is not supported on the publisher side; consumers run in cmd/worker.
func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
    return fmt.Errorf("subscribe not supported on AMQP publisher, use the worker")
}

func (q *AMQPQueue) Close() {
    q.ch.Close()
    q.conn.Close()
}

var _ Queue = (*AMQPQueue)(nil)
