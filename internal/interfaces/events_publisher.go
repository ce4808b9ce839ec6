package interfaces

import "context"

// EventPublisher delivers an event to a topic. Events sharing a key keep
// their relative order.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}
