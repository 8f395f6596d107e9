package dispatch

// Host is the numeric backend raw computation is delegated to. Call
// receives the operation name, the unwrapped positional operands, and the
// keyword options the host invocation carried; it returns the raw result.
type Host interface {
	Call(op string, args []any, opts map[string]any) (any, error)
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(op string, args []any, opts map[string]any) (any, error)

// Call implements Host.
func (f HostFunc) Call(op string, args []any, opts map[string]any) (any, error) {
	return f(op, args, opts)
}
