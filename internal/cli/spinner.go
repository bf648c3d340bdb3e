package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/chromatic/pkg/observability"
	"github.com/matzehuels/chromatic/pkg/palette"
)

// spinnerFrames are drawn in turn, each tinted with the next palette color.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows an animated status line while a search runs: the message,
// an optional detail such as the k being tried, and the elapsed time. It
// stops when the context is cancelled.
type Spinner struct {
	message string
	detail  string
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	colors  palette.Palette
	start   time.Time
	width   int
	mu      sync.Mutex
}

// newSpinner creates a new spinner with the given message.
func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

// newSpinnerWithContext creates a spinner that will stop when the context is cancelled.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		colors:  palette.Master,
	}
}

// SetDetail replaces the text shown after the message.
func (s *Spinner) SetDetail(detail string) {
	s.mu.Lock()
	s.detail = detail
	s.mu.Unlock()
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.start = time.Now()
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.draw(i)
			}
		}
	}()
}

func (s *Spinner) draw(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text := s.message
	if s.detail != "" {
		text += " " + s.detail
	}
	text += " " + time.Since(s.start).Round(100*time.Millisecond).String()
	s.width = max(s.width, len(text))
	frame := lipgloss.NewStyle().Foreground(lipgloss.Color(string(s.frameColor(i))))
	fmt.Fprintf(uiOut, "\r%s %s", frame.Render(spinnerFrames[i%len(spinnerFrames)]), StyleDim.Render(text))
}

// frameColor returns the palette color of frame i.
func (s *Spinner) frameColor(i int) palette.Color {
	return s.colors[i%len(s.colors)]
}

// Stop stops the spinner and clears the line. It is safe to call more than once.
func (s *Spinner) Stop() {
	s.cancel()
	s.mu.Lock()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	s.mu.Unlock()
	<-s.stopped
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(uiOut, "\r%s\r", strings.Repeat(" ", max(s.width, len(s.message))+4))
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and shows an error message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled returns true if the spinner was stopped due to context cancellation.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

// searchHooks returns hooks that forward to next and show the k of every
// search attempt as the spinner detail.
func (s *Spinner) searchHooks(next observability.SearchHooks) observability.SearchHooks {
	return spinnerHooks{SearchHooks: next, spinner: s}
}

type spinnerHooks struct {
	observability.SearchHooks
	spinner *Spinner
}

func (h spinnerHooks) OnSearchStart(ctx context.Context, strategy string, k, vertices int) {
	h.SearchHooks.OnSearchStart(ctx, strategy, k, vertices)
	h.spinner.SetDetail(fmt.Sprintf("k=%d", k))
}
