package ordering

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces order ids for confirmed orders.
type IDGenerator interface {
	OrderID() string
}

// StaticIDs always returns the same id. Deterministic, for tests.
type StaticIDs struct{ ID string }

func (s StaticIDs) OrderID() string { return s.ID }

// RandomIDs tags orders with a short random token.
type RandomIDs struct{}

func (RandomIDs) OrderID() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "ORD" + token
}

// DailySequence numbers orders ORD_YYYYMMDD_NNN, restarting at 001 each
// day. The counter is process-local; good enough without order storage.
type DailySequence struct {
	mu  sync.Mutex
	day string
	n   int
}

func NewDailySequence() *DailySequence { return &DailySequence{} }

func (d *DailySequence) OrderID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	today := time.Now().UTC().Format("20060102")
	if today != d.day {
		d.day = today
		d.n = 0
	}
	d.n++
	return fmt.Sprintf("ORD_%s_%03d", today, d.n)
}
