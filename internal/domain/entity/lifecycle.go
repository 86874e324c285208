package entity

import "time"

// Now is the clock used for lifecycle timestamps: UTC, truncated to the
// microsecond precision Postgres keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Lifecycle holds the timestamps every aggregate carries. It is embedded by
// value; deletedAt is non-nil exactly when the aggregate is inactive.
type Lifecycle struct {
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

func newLifecycle(active bool) Lifecycle {
	now := Now()
	l := Lifecycle{createdAt: now, updatedAt: now}
	if !active {
		l.deletedAt = &now
	}
	return l
}

func restoreLifecycle(createdAt, updatedAt time.Time, deletedAt *time.Time) Lifecycle {
	l := Lifecycle{createdAt: createdAt, updatedAt: updatedAt}
	if deletedAt != nil {
		d := *deletedAt
		l.deletedAt = &d
	}
	return l
}

func (l Lifecycle) CreatedAt() time.Time {
	return l.createdAt
}

func (l Lifecycle) UpdatedAt() time.Time {
	return l.updatedAt
}

// DeletedAt returns a copy so callers cannot rewrite the aggregate's state.
func (l Lifecycle) DeletedAt() *time.Time {
	if l.deletedAt == nil {
		return nil
	}
	d := *l.deletedAt
	return &d
}

// touch refreshes updatedAt, always moving it strictly forward.
func (l *Lifecycle) touch() time.Time {
	now := Now()
	if !now.After(l.updatedAt) {
		now = l.updatedAt.Add(time.Microsecond)
	}
	l.updatedAt = now
	return now
}

func (l *Lifecycle) markActive() {
	l.touch()
	l.deletedAt = nil
}

func (l *Lifecycle) markInactive() {
	now := l.touch()
	if l.deletedAt == nil {
		l.deletedAt = &now
	}
}
