package service

import "context"

// Command is a structured call selected by the language-model backend:
// an action name plus its loosely-typed argument bag. The dispatcher
// validates the bag into typed arguments before acting.
type Command struct {
	Name string
	Args map[string]interface{}
}

// IntentResolver turns free-form transcribed text into a Command.
// A nil result means no call could be resolved; resolvers never report
// errors to the caller, they log and fail closed.
type IntentResolver interface {
	Resolve(ctx context.Context, text string) *Command
}

// Notifier delivers a desktop notification. Delivery is best-effort
// and not cancellable once started.
type Notifier interface {
	Notify(title, message string) error
}
