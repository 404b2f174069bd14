package demo

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// operation describes one fake async action bound to a button.
type operation struct {
	verb    string // "Uploading", shown while running
	done    string // "Upload complete"
	failed  string // "Upload failed"
	failPct int    // chance of failure, 0-100
}

// startOp begins a simulated operation: opens a span, logs the start, and
// schedules the completion message after a random delay.
func (m *Model) startOp(b button, op operation) tea.Cmd {
	opID := uuid.NewString()
	key := b.target.Key()

	_, span := m.tracer.Start(m.ctx, op.verb,
		oteltrace.WithAttributes(
			attribute.String("smartstatus.op.id", opID),
			attribute.String("smartstatus.key", key),
		))
	m.spans[opID] = span

	m.log.Infow("operation started", "op", opID, "key", key, "verb", op.verb)

	delay := time.Duration(500+rand.Intn(2500)) * time.Millisecond
	success := rand.Intn(100) >= op.failPct
	text := op.done
	if !success {
		text = op.failed
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return OpDoneMsg{OpID: opID, Key: key, Text: text, Success: success}
	})
}

// finishOp ends the operation's span and logs the outcome.
func (m *Model) finishOp(msg OpDoneMsg) {
	if span, ok := m.spans[msg.OpID]; ok {
		outcome := "success"
		if !msg.Success {
			outcome = "failure"
		}
		span.SetAttributes(attribute.String("smartstatus.outcome", outcome))
		span.End()
		delete(m.spans, msg.OpID)
	}
	m.log.Infow("operation finished", "op", msg.OpID, "key", msg.Key, "success", msg.Success)
}

// runningMessage renders the in-flight text for an operation.
func runningMessage(op operation) string {
	return fmt.Sprintf("%s...", op.verb)
}
