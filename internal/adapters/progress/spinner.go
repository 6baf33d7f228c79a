package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/adapter-deploy/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SpinnerProgressReporter shows deployment progress with a spinner
type SpinnerProgressReporter struct {
	spinner      *spinner.Spinner
	out          io.Writer
	stages       []stageInfo
	currentStage usecase.ExecutionStage
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
	Status    string
	Message   string
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter writing to stderr
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return NewSpinnerProgressReporterTo(os.Stderr)
}

// NewSpinnerProgressReporterTo creates a spinner reporter writing to out
func NewSpinnerProgressReporterTo(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	stage := usecase.ExecutionStage(event.Stage)
	if stage != r.currentStage {
		r.completeCurrentStage(stage)
		r.currentStage = stage
		r.stages = append(r.stages, stageInfo{
			Stage:     stage,
			StartTime: time.Now(),
			Status:    "running",
		})
	}
	if len(r.stages) > 0 {
		r.stages[len(r.stages)-1].Message = event.Message
	}

	switch {
	case event.Spinner:
		r.spinner.Suffix = " " + r.stageLine() + "  " + color.New(color.Faint).Sprint(event.Message)
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	case stage == usecase.StageCompleted || stage == usecase.StageSkipped || stage == usecase.StageFailed:
		r.stop()
	default:
		r.spinner.Suffix = " " + r.stageLine()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.pause(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.pause(func() {
		color.New(color.FgRed).Fprintln(r.out, message)
	})
}

// Stop halts the spinner if it is still running
func (r *SpinnerProgressReporter) Stop() {
	r.stop()
}

func (r *SpinnerProgressReporter) stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

func (r *SpinnerProgressReporter) pause(print func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	print()
	if wasActive {
		r.spinner.Start()
	}
}

// completeCurrentStage closes the running stage with a status derived from the next one
func (r *SpinnerProgressReporter) completeCurrentStage(next usecase.ExecutionStage) {
	if len(r.stages) == 0 {
		return
	}
	idx := len(r.stages) - 1
	r.stages[idx].EndTime = time.Now()
	switch next {
	case usecase.StageSkipped:
		r.stages[idx].Status = "skipped"
	case usecase.StageFailed:
		r.stages[idx].Status = "failed"
	default:
		r.stages[idx].Status = "completed"
	}
}

// stageLine renders the stage trail, e.g. "✓ Checking → ● Deploying (3s)"
func (r *SpinnerProgressReporter) stageLine() string {
	title := cases.Title(language.English)
	var display string
	for i, stage := range r.stages {
		var icon string
		var stageColor *color.Color

		switch stage.Status {
		case "completed":
			icon = "✓"
			stageColor = color.New(color.FgGreen)
		case "running":
			icon = "●"
			stageColor = color.New(color.FgYellow)
		case "failed":
			icon = "✗"
			stageColor = color.New(color.FgRed)
		case "skipped":
			icon = "⊘"
			stageColor = color.New(color.FgWhite, color.Faint)
		default:
			icon = "○"
			stageColor = color.New(color.FgWhite)
		}

		duration := ""
		if !stage.EndTime.IsZero() {
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		} else if stage.Status == "running" {
			duration = fmt.Sprintf(" (%s)", time.Since(stage.StartTime).Round(time.Second))
		}

		if i > 0 {
			display += " → "
		}
		display += fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(title.String(string(stage.Stage))), duration)
	}
	return display
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
