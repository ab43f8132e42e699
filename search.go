package timetree

import (
	"iter"
	"slices"

	"github.com/skybet/time-tree/internal/util"
)

// All returns an iterator over all descendants of the timer in pre-order:
// each child is yielded before its own children, siblings in the order they were split.
func (t *Timer) All() iter.Seq[*Timer] {
	return func(yield func(*Timer) bool) {
		if t != nil {
			t.all(yield)
		}
	}
}

func (t *Timer) all(yield func(*Timer) bool) bool {
	for _, sub := range t.timers {
		if !yield(sub) || !sub.all(yield) {
			return false
		}
	}
	return true
}

func (t *Timer) find(name string, recursive bool) iter.Seq[*Timer] {
	var seq iter.Seq[*Timer]
	if recursive {
		seq = t.All()
	} else {
		seq = slices.Values(t.Timers())
	}
	return util.IterFilter(seq, func(sub *Timer) bool { return sub.name == name })
}

// SubTimer returns the first child timer with the given name, nil if there is none.
// If recursive is true, all descendants are searched in pre-order.
func (t *Timer) SubTimer(name string, recursive bool) *Timer {
	sub, _ := util.IterFirst(t.find(name, recursive))
	return sub
}

// SubTimers returns all child timers with the given name.
// If recursive is true, all descendants are searched in pre-order, so a matching
// child always precedes its matching descendants.
func (t *Timer) SubTimers(name string, recursive bool) []*Timer {
	return slices.Collect(t.find(name, recursive))
}
