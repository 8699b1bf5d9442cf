package bus

import "context"

// Command is a request for the X event loop, which owns all window state.
// The API and the file watcher never touch X from their own goroutines; they
// queue commands here and the loop drains them in order.
type Command interface {
	command()
}

type OpenCmd struct {
	Path string
}

// RotateCmd rotates by quarter turns, positive clockwise.
type RotateCmd struct {
	Turns int
}

type OpacityCmd struct {
	Value float64
}

type QuitCmd struct{}

func (OpenCmd) command()    {}
func (RotateCmd) command()  {}
func (OpacityCmd) command() {}
func (QuitCmd) command()    {}

func NewCommands() *Commands {
	return &Commands{C: make(chan Command, 16)}
}

type Commands struct {
	C chan Command
}

// Send queues a command, giving up when ctx ends rather than blocking a
// producer on a stalled loop.
func (c *Commands) Send(ctx context.Context, cmd Command) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case c.C <- cmd:
		return nil
	}
}
