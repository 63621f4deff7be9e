package diffdoc

import "context"

// Sink consumes the composed command sequence and produces the final
// document artifact.
type Sink interface {
	// Render writes the report. Implementations should replace the target
	// atomically so a failed run leaves no partial artifact.
	Render(ctx context.Context, report *Report) error
}
