package spinner

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a terminal activity indicator running on its own goroutine.
// Stop signals the goroutine through a channel and waits for it to exit, so
// spinner frames and subsequent output never interleave.
type Spinner struct {
	w        io.Writer
	message  string
	interval time.Duration
	style    lipgloss.Style

	quit    chan struct{}
	done    chan struct{}
	started bool
	stop    sync.Once
}

// New creates a spinner that writes to w.
func New(w io.Writer, message string) *Spinner {
	return &Spinner{
		w:        w,
		message:  message,
		interval: 100 * time.Millisecond,
		style:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the indicator goroutine. It renders one frame immediately
// so short operations still show feedback.
func (s *Spinner) Start() {
	if s.started {
		return
	}
	s.started = true
	go s.run()
}

func (s *Spinner) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	i := 0
	s.render(i)
	for {
		select {
		case <-s.quit:
			return
		case <-ticker.C:
			i++
			s.render(i)
		}
	}
}

func (s *Spinner) render(i int) {
	fmt.Fprintf(s.w, "\r%s %s", s.style.Render(frames[i%len(frames)]), s.message)
}

// Stop signals the goroutine, waits for it to exit, and clears the line.
// It is safe to call more than once, and before Start.
func (s *Spinner) Stop() {
	s.stop.Do(func() {
		close(s.quit)
		if s.started {
			<-s.done
		}
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+2))
	})
}
