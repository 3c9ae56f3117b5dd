package syncctl

import (
	"fmt"

	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/guard"
	"github.com/zeusync/moco/internal/core/observability/log"
)

// Op is an axis list operation.
type Op uint8

const (
	OpAdd Op = iota
	OpRemove
	OpMoveUp
	OpMoveDown
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpMoveUp:
		return "move-up"
	case OpMoveDown:
		return "move-down"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// Command is one axis list operation; Index is ignored by OpAdd.
type Command struct {
	Op    Op
	Index int
}

// Enabled reports whether the command would do anything right now.
func (c *Controller) Enabled(cmd Command) bool {
	switch cmd.Op {
	case OpAdd:
		return c.registry.Len() < axis.MaxAxes
	case OpRemove:
		_, ok := c.registry.At(cmd.Index)
		return ok
	case OpMoveUp:
		return c.registry.CanMoveUp(cmd.Index)
	case OpMoveDown:
		return c.registry.CanMoveDown(cmd.Index)
	default:
		return false
	}
}

// Execute runs the command under a held pass. Operations that move
// definitions between slots finish by refreshing the inputs from the objects.
func (c *Controller) Execute(cmd Command) bool {
	pass := guard.Begin(cmd.Op.String())
	var ok bool
	switch cmd.Op {
	case OpAdd:
		_, ok = c.registry.Add(pass)
		return ok
	case OpRemove:
		ok = c.registry.Remove(pass, cmd.Index)
	case OpMoveUp:
		ok = c.registry.MoveUp(pass, cmd.Index)
	case OpMoveDown:
		ok = c.registry.MoveDown(pass, cmd.Index)
	default:
		return false
	}
	if !ok {
		c.log.Debug("axis command ignored", log.String("op", cmd.Op.String()), log.Int("index", cmd.Index))
		return false
	}
	c.refreshInputs(pass)
	return true
}

// AddAxis appends an axis; it is a no-op at capacity.
func (c *Controller) AddAxis() bool { return c.Execute(Command{Op: OpAdd}) }

func (c *Controller) RemoveAxis(i int) bool { return c.Execute(Command{Op: OpRemove, Index: i}) }

func (c *Controller) MoveUp(i int) bool { return c.Execute(Command{Op: OpMoveUp, Index: i}) }

func (c *Controller) MoveDown(i int) bool { return c.Execute(Command{Op: OpMoveDown, Index: i}) }
