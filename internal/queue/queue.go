package queue

import (
    "fmt"
    "log"
    "sync"
)

// Queue interface
type Queue interface {
    Publish(topic string, payload any) error
    Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue fans published payloads out to in-process subscribers.
// Used when no AMQP broker is configured, and in tests.
type InMemoryQueue struct {
    mu       sync.Mutex
    handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
    return &InMemoryQueue{
        handlers: make(map[string][]func(payload any) error),
    }
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
    q.mu.Lock()
    handlers := q.handlers[topic]
    q.mu.Unlock()

    if len(handlers) == 0 {
        return fmt.Errorf("no subscribers for topic %s", topic)
    }

    for _, handler := range handlers {
        go func(h func(payload any) error) {
            if err := h(payload); err != nil {
                log.Printf("⚠️ handler for topic %s failed: %v\n", topic, err)
            }
        }(handler)
    }

    return nil
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
    q.mu.Lock()
    defer q.mu.Unlock()

    q.handlers[topic] = append(q.handlers[topic], handler)
    return nil
}

// StartExportLogSubscriber logs audit events locally when no broker is wired.
func StartExportLogSubscriber(q Queue) {
    err := q.Subscribe(ExportsTopic, func(payload any) error {
        log.Printf("📦 export completed: %+v\n", payload)
        return nil
    })
    if err != nil {
        log.Println("⚠️ Failed to start subscriber for", ExportsTopic, ":", err)
    }
}
