package nav

// Operation is a transient mutation request consumed by the serializer. The
// variants mirror the stack transforms the controller exposes; requests are
// values, never stored, and carry everything needed to apply themselves.
type Operation interface {
	apply(*Controller)
	name() string
}

type insertOp struct {
	view      View
	animation Animation
}

func (o insertOp) apply(c *Controller) { c.Insert(o.view, o.animation) }
func (o insertOp) name() string        { return "insert" }

type removeLastOp struct{}

func (removeLastOp) apply(c *Controller) { c.RemoveLast() }
func (removeLastOp) name() string        { return "remove_last" }

type removeAllUpToOp struct {
	identity string
}

func (o removeAllUpToOp) apply(c *Controller) { c.RemoveAllUpTo(o.identity) }
func (o removeAllUpToOp) name() string        { return "remove_all_up_to" }

type removeAllExceptRootOp struct{}

func (removeAllExceptRootOp) apply(c *Controller) { c.RemoveAllExceptRoot() }
func (removeAllExceptRootOp) name() string        { return "remove_all_except_root" }

// InsertOp requests appending view with the given animation.
func InsertOp(view View, animation Animation) Operation {
	return insertOp{view: view, animation: animation}
}

// RemoveLastOp requests popping the top entry.
func RemoveLastOp() Operation {
	return removeLastOp{}
}

// RemoveAllUpToOp requests truncating the stack to end just before the entry
// with the given identity.
func RemoveAllUpToOp(identity string) Operation {
	return removeAllUpToOp{identity: identity}
}

// RemoveAllExceptRootOp requests truncating the stack to its root.
func RemoveAllExceptRootOp() Operation {
	return removeAllExceptRootOp{}
}
