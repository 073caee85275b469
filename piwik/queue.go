package piwik

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Queue is the asynchronous command buffer the vendor script drains. It is
// append-only from the point of view of providers: commands keep the order in
// which they were pushed and only the consumer removes them.
type Queue struct {
	mu       sync.Mutex
	commands []Command
	log      logrus.FieldLogger
}

type QueueOption func(*Queue)

func WithLogger(log logrus.FieldLogger) QueueOption {
	return func(q *Queue) {
		q.log = log
	}
}

func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{
		commands: []Command{},
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *Queue) Push(name string, args ...any) {
	if !IsKnownCommand(name) {
		q.log.WithField("command", name).Warn("pushing unrecognized piwik command")
	}
	cmd := NewCommand(name, args...)

	q.mu.Lock()
	q.commands = append(q.commands, cmd)
	q.mu.Unlock()

	q.log.WithField("command", name).Debugf("queued %v", cmd.Args())
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.commands)
}

// Commands returns a snapshot of the queued commands.
func (q *Queue) Commands() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Command, len(q.commands))
	copy(out, q.commands)
	return out
}

// Drain hands every queued command to the consumer and empties the buffer.
func (q *Queue) Drain() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.commands
	q.commands = []Command{}
	return out
}

// MarshalJSON encodes the queue in the same shape as the _paq array.
func (q *Queue) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(q.Commands())
	return b, errors.WithStack(err)
}
