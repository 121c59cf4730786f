package event

import (
	"container/heap"
	"time"

	"github.com/kas-gui/kas-go/pkg/core"
)

// timerRequest is one pending wake-up. seq breaks deadline ties in request
// order.
type timerRequest struct {
	deadline time.Time
	owner    core.WidgetID
	seq      uint64
	index    int
}

// timerQueue is a min-heap of requests ordered by deadline, with at most one
// request per owner.
type timerQueue struct {
	items   []*timerRequest
	byOwner map[core.WidgetID]*timerRequest
	seq     uint64
}

func (q *timerQueue) Len() int { return len(q.items) }

func (q *timerQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.deadline.Equal(b.deadline) {
		return a.seq < b.seq
	}
	return a.deadline.Before(b.deadline)
}

func (q *timerQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *timerQueue) Push(x any) {
	r := x.(*timerRequest)
	r.index = len(q.items)
	q.items = append(q.items, r)
}

func (q *timerQueue) Pop() any {
	old := q.items
	n := len(old)
	r := old[n-1]
	old[n-1] = nil
	r.index = -1
	q.items = old[:n-1]
	return r
}

// set inserts a request for owner, replacing any pending one.
func (q *timerQueue) set(owner core.WidgetID, deadline time.Time) {
	if q.byOwner == nil {
		q.byOwner = make(map[core.WidgetID]*timerRequest)
	}
	q.seq++
	if r, ok := q.byOwner[owner]; ok {
		r.deadline = deadline
		r.seq = q.seq
		heap.Fix(q, r.index)
		return
	}
	r := &timerRequest{deadline: deadline, owner: owner, seq: q.seq}
	heap.Push(q, r)
	q.byOwner[owner] = r
}

// peek returns the earliest deadline.
func (q *timerQueue) peek() (time.Time, bool) {
	if len(q.items) == 0 {
		return time.Time{}, false
	}
	return q.items[0].deadline, true
}

// popExpired removes and returns, in deadline order, every owner whose
// deadline is not after now.
func (q *timerQueue) popExpired(now time.Time) []core.WidgetID {
	var owners []core.WidgetID
	for len(q.items) > 0 && !q.items[0].deadline.After(now) {
		r := heap.Pop(q).(*timerRequest)
		delete(q.byOwner, r.owner)
		owners = append(owners, r.owner)
	}
	return owners
}

func (q *timerQueue) clear() {
	q.items = nil
	q.byOwner = nil
}
