package util

import "golang.org/x/exp/constraints"

// pqEntry is one slot of the binary heap backing PriorityQueue. seq records
// insertion order so that equal-priority entries pop in FIFO order, as the
// best-first skeleton requires for deterministic tie-breaking.
type pqEntry[T any, P constraints.Ordered] struct {
	item     T
	priority P
	seq      int64
}

// PriorityQueue is a binary-heap min-priority-queue keyed by (priority,
// insertion sequence). Decrease-key is not supported; callers that need to
// update an item's priority simply Enqueue it again and rely on lazy
// invalidation against their own best-known-cost map.
type PriorityQueue[T any, P constraints.Ordered] struct {
	entries []pqEntry[T, P]
	nextSeq int64
}

// NewPriorityQueue creates an empty queue with the given initial capacity.
func NewPriorityQueue[T any, P constraints.Ordered](capacity int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{entries: make([]pqEntry[T, P], 0, capacity)}
}

// Len returns the number of queued items.
func (self *PriorityQueue[T, P]) Len() int {
	return len(self.entries)
}

// Enqueue adds item with the given priority.
func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	self.entries = append(self.entries, pqEntry[T, P]{item: item, priority: priority, seq: self.nextSeq})
	self.nextSeq++
	self.siftUp(len(self.entries) - 1)
}

// Dequeue removes and returns the lowest-priority item. ok is false if the
// queue is empty.
func (self *PriorityQueue[T, P]) Dequeue() (item T, ok bool) {
	if len(self.entries) == 0 {
		return item, false
	}
	top := self.entries[0]
	last := len(self.entries) - 1
	self.entries[0] = self.entries[last]
	self.entries = self.entries[:last]
	if len(self.entries) > 0 {
		self.siftDown(0)
	}
	return top.item, true
}

func (self *PriorityQueue[T, P]) less(i, j int) bool {
	a, b := self.entries[i], self.entries[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

func (self *PriorityQueue[T, P]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !self.less(i, parent) {
			break
		}
		self.entries[i], self.entries[parent] = self.entries[parent], self.entries[i]
		i = parent
	}
}

func (self *PriorityQueue[T, P]) siftDown(i int) {
	n := len(self.entries)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && self.less(left, smallest) {
			smallest = left
		}
		if right < n && self.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			break
		}
		self.entries[i], self.entries[smallest] = self.entries[smallest], self.entries[i]
		i = smallest
	}
}
