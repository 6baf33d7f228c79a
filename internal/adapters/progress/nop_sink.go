package progress

import (
	"context"

	"github.com/trebuchet-org/adapter-deploy/internal/usecase"
)

// NopSink is a no-op implementation of ProgressSink
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() usecase.ProgressSink {
	return &NopSink{}
}

// OnProgress does nothing with progress events
func (n *NopSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {}

// Info does nothing with info messages
func (n *NopSink) Info(message string) {}

// Error does nothing with error messages
func (n *NopSink) Error(message string) {}

// New picks the spinner for interactive sessions and the no-op sink otherwise
func New(interactive bool) usecase.ProgressSink {
	if interactive {
		return NewSpinnerProgressReporter()
	}
	return NewNopSink()
}

// Ensure NopSink implements ProgressSink
var _ usecase.ProgressSink = (*NopSink)(nil)
