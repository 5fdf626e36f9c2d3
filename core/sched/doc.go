// Package sched runs the recurring sync jobs on fixed intervals.
//
// Each registered job gets its own ticker goroutine. A job that is still
// running when its next tick arrives is skipped for that tick, so slow
// runs never pile up. Stopping the scheduler cancels the shared context
// and waits for in-flight runs to finish.
package sched
