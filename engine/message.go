package engine

import "sync"

// Message is a cross-widget notification delivered through the runtime mailbox.
// The set is closed: only types in this package implement it.
type Message interface {
	message()
}

// FocusMsg sets the receiver's focus flag
type FocusMsg struct {
	From    WidgetID
	Focused bool
}

// SelectMsg reports an item chosen in another widget
type SelectMsg struct {
	From  WidgetID
	Index int
	Label string
}

// TextMsg replaces the receiver's displayed text
type TextMsg struct {
	From  WidgetID
	Title string
	Body  string
}

func (FocusMsg) message()  {}
func (SelectMsg) message() {}
func (TextMsg) message()   {}

type envelope struct {
	to  WidgetID
	msg Message
}

// mailbox is a FIFO filled by concurrent handlers and drained by the frame loop
type mailbox struct {
	mu    sync.Mutex
	queue []envelope
}

func (m *mailbox) push(e envelope) {
	m.mu.Lock()
	m.queue = append(m.queue, e)
	m.mu.Unlock()
}

// take removes and returns everything queued so far
func (m *mailbox) take() []envelope {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.queue
	m.queue = nil
	return out
}

func (m *mailbox) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// pendingApply is an Expose callback queued during a frame
type pendingApply struct {
	w  *Widget
	fn func()
}

// applyQueue holds Expose callbacks until the next delivery round
type applyQueue struct {
	mu    sync.Mutex
	queue []pendingApply
}

func (q *applyQueue) push(p pendingApply) {
	q.mu.Lock()
	q.queue = append(q.queue, p)
	q.mu.Unlock()
}

func (q *applyQueue) take() []pendingApply {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.queue
	q.queue = nil
	return out
}

func (q *applyQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}
