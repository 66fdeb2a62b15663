package connectivity

import "context"

// Repository appends and lists connectivity events. Events are never updated.
type Repository interface {
	Append(ctx context.Context, event *Event) error
	ListByAccountNo(ctx context.Context, accountNo string, limit int) ([]*Event, error)
}

// Publisher forwards events to the notification service.
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
}
