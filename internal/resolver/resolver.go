package resolver

import "context"

// Resolver classifies every declared dependency in a snapshot.
//
// Resolution is a pure, synchronous computation: no I/O, no shared state
// across calls. Re-running after an install step is the caller's loop.
type Resolver interface {
	Resolve(ctx context.Context, in Input) (Report, error)
}
