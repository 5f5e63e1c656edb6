package scheduler

// readyQueue is an intrusive doubly linked list kept sorted by non-decreasing priority,
// FIFO among equal priorities. The Async of a queued task points back at its task, which
// makes removal and move-to-front O(1).
type readyQueue struct {
	head, tail *task
	n          int
}

func (q *readyQueue) len() int {
	return q.n
}

func (q *readyQueue) front() *task {
	return q.head
}

// insert scans from the least urgent end and places t right after the last task whose
// priority is <= t.priority.
func (q *readyQueue) insert(t *task) {
	after := q.tail
	for after != nil && after.priority > t.priority {
		after = after.prev
	}
	if after == nil {
		q.pushFront(t)
		return
	}

	t.prev = after
	t.next = after.next
	if after.next != nil {
		after.next.prev = t
	} else {
		q.tail = t
	}
	after.next = t
	q.n++
	t.async.link = t
}

func (q *readyQueue) pushFront(t *task) {
	t.prev = nil
	t.next = q.head
	if q.head != nil {
		q.head.prev = t
	} else {
		q.tail = t
	}
	q.head = t
	q.n++
	t.async.link = t
}

func (q *readyQueue) remove(t *task) {
	if t.prev != nil {
		t.prev.next = t.next
	} else {
		q.head = t.next
	}
	if t.next != nil {
		t.next.prev = t.prev
	} else {
		q.tail = t.prev
	}
	t.prev, t.next = nil, nil
	q.n--
	t.async.link = nil
}

func (q *readyQueue) popFront() *task {
	t := q.head
	if t == nil {
		return nil
	}
	q.remove(t)
	return t
}
