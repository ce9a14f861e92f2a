// Package notify delivers acknowledgments, advisories and alerts to the
// user.
package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Notifier = (*CLINotifier)(nil)
	_ domain.Notifier = (*Queue)(nil)
)

var (
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bae6fd")).Bold(true)
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fca5a5")).Bold(true)
)

// PrintFunc prints a formatted line. Matches fmt.Printf.
type PrintFunc func(format string, a ...any)

// CLINotifier writes messages to the terminal.
type CLINotifier struct {
	log     *logger.Logger
	printFn PrintFunc
}

// NewCLINotifier creates a terminal notifier. If printFn is nil each message
// is printed to stdout on its own line.
func NewCLINotifier(log *logger.Logger, printFn PrintFunc) *CLINotifier {
	if printFn == nil {
		printFn = func(format string, a ...any) {
			fmt.Printf(format+"\n", a...)
		}
	}
	return &CLINotifier{log: log, printFn: printFn}
}

// Notify prints a non-blocking notice.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.printFn("%s", noticeStyle.Render(message))
	return nil
}

// Alert prints a blocking alert.
func (n *CLINotifier) Alert(ctx context.Context, message string) error {
	n.log.Debug("alert: %s", message)
	n.printFn("%s", alertStyle.Render("! "+message))
	return nil
}

// Kind distinguishes notices from alerts.
type Kind int

const (
	KindNotice Kind = iota
	KindAlert
)

// Message is a queued notification.
type Message struct {
	Kind Kind
	Text string
}

// Queue buffers notifications until a UI drains them.
type Queue struct {
	mu   sync.Mutex
	msgs []Message
	log  *logger.Logger
}

// NewQueue creates an empty queue.
func NewQueue(log *logger.Logger) *Queue {
	return &Queue{log: log}
}

// Notify enqueues a notice.
func (q *Queue) Notify(ctx context.Context, message string) error {
	q.push(KindNotice, message)
	return nil
}

// Alert enqueues an alert.
func (q *Queue) Alert(ctx context.Context, message string) error {
	q.push(KindAlert, message)
	return nil
}

func (q *Queue) push(k Kind, text string) {
	q.log.Debug("queue: %s", text)
	q.mu.Lock()
	defer q.mu.Unlock()
	q.msgs = append(q.msgs, Message{Kind: k, Text: text})
}

// Drain returns and clears the queued messages in arrival order.
func (q *Queue) Drain() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.msgs
	q.msgs = nil
	return out
}
