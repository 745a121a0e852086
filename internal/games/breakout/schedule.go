package breakout

import "sort"

// task is a one-shot action due at a tick.
type task struct {
	at  uint64
	seq uint64
	fn  func()
}

// Scheduler runs one-shot actions on the tick clock. Scheduling never
// blocks; due actions run when the owner calls RunDue.
type Scheduler struct {
	tasks []task
	seq   uint64
}

// After schedules fn to run at tick now+delay.
func (s *Scheduler) After(now, delay uint64, fn func()) {
	s.seq++
	s.tasks = append(s.tasks, task{at: now + delay, seq: s.seq, fn: fn})
}

// RunDue runs every task due at or before now, earliest first and in
// scheduling order for ties. Tasks scheduled by a running task wait for the
// next call. It returns the number of tasks run.
func (s *Scheduler) RunDue(now uint64) int {
	var due, rest []task
	for _, t := range s.tasks {
		if t.at <= now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	if len(due) == 0 {
		return 0
	}
	s.tasks = rest

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Pending returns the number of tasks not yet run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}
