package transaction

import (
	"fmt"
	"time"

	"github.com/symbolkit/symbol-go/pkg/errs"
)

// Deadline is the number of milliseconds since the network epoch after which
// a transaction is no longer accepted.
type Deadline uint64

// NewDeadline returns the deadline d after now. epochAdjustment is the
// network epoch in Unix seconds.
func NewDeadline(now time.Time, d time.Duration, epochAdjustment uint64) (Deadline, error) {
	if d <= 0 {
		return 0, fmt.Errorf("%w: deadline duration must be positive, got %s", errs.ErrInputFormat, d)
	}
	ms := now.Add(d).UnixMilli() - int64(epochAdjustment)*1000
	if ms <= 0 {
		return 0, fmt.Errorf("%w: deadline %d ms precedes the network epoch", errs.ErrInputFormat, ms)
	}
	return Deadline(ms), nil
}

// DeadlineFromUint64 wraps a raw deadline value.
func DeadlineFromUint64(v uint64) Deadline {
	return Deadline(v)
}

// Uint64 returns the raw deadline value.
func (d Deadline) Uint64() uint64 {
	return uint64(d)
}

// ToTime converts the deadline to wall-clock time.
func (d Deadline) ToTime(epochAdjustment uint64) time.Time {
	return time.UnixMilli(int64(d) + int64(epochAdjustment)*1000)
}
