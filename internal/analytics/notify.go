package analytics

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Level string

const (
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelError    Level = "error"
	LevelCritical Level = "critical"
)

type Notification struct {
	Timestamp time.Time `json:"timestamp"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
}

type NotificationFunc func(Notification)

// Notifier fans notifications out to registered callbacks and the log.
type Notifier struct {
	mu        sync.Mutex
	callbacks []NotificationFunc
	logger    zerolog.Logger
}

func NewNotifier(logger zerolog.Logger) *Notifier {
	return &Notifier{logger: logger}
}

func (n *Notifier) AddCallback(fn NotificationFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.callbacks = append(n.callbacks, fn)
}

func (n *Notifier) Send(title, message string, level Level) {
	notification := Notification{
		Timestamp: time.Now(),
		Title:     title,
		Message:   message,
		Level:     level,
	}

	event := n.logger.Info()
	switch level {
	case LevelWarning:
		event = n.logger.Warn()
	case LevelError, LevelCritical:
		event = n.logger.Error()
	}
	event.Str("title", title).Str("level", string(level)).Msg(message)

	n.mu.Lock()
	callbacks := make([]NotificationFunc, len(n.callbacks))
	copy(callbacks, n.callbacks)
	n.mu.Unlock()

	for _, fn := range callbacks {
		fn(notification)
	}
}

// CheckErrorRate warns when more than 10% of queries failed. It only fires
// once a minimal sample size is reached.
func (n *Notifier) CheckErrorRate(r *Recorder) bool {
	s := r.Summary()
	if s.TotalQueries <= 10 {
		return false
	}

	rate := float64(s.TotalErrors) / float64(s.TotalQueries)
	if rate > 0.1 {
		n.Send("High Error Rate", "error rate above 10% across recent queries", LevelWarning)
		return true
	}
	return false
}

// CheckResponseTime warns when the average response time exceeds 5 seconds.
func (n *Notifier) CheckResponseTime(r *Recorder) bool {
	s := r.Summary()
	if s.AvgResponseTimeMs > 5000 {
		n.Send("Slow Response Times", "average response time above 5s", LevelWarning)
		return true
	}
	return false
}
