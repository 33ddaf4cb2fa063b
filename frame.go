package scheme

// FrameToken identifies one scheduled frame callback. The zero token means
// "nothing scheduled".
type FrameToken int64

// FrameScheduler is the host primitive the renderer uses to defer a paint
// pass to the next frame. Schedule must run the callback once, on the same
// cooperative thread, after the current synchronous work completes; Cancel
// discards a callback that has not run yet. Inject a fake implementation in
// tests to tick frames by hand.
type FrameScheduler interface {
	Schedule(fn func()) FrameToken
	Cancel(token FrameToken)
}

// scheduledFrame pairs a callback with its token in the loop scheduler.
type scheduledFrame struct {
	token FrameToken
	fn    func()
}

// loopScheduler is the default FrameScheduler: callbacks queue up and run
// on the next Scheme.Update tick. Single-threaded; no locking.
type loopScheduler struct {
	nextToken FrameToken
	queue     []scheduledFrame
}

func (l *loopScheduler) Schedule(fn func()) FrameToken {
	l.nextToken++
	l.queue = append(l.queue, scheduledFrame{token: l.nextToken, fn: fn})
	return l.nextToken
}

func (l *loopScheduler) Cancel(token FrameToken) {
	for i, f := range l.queue {
		if f.token == token {
			l.queue = append(l.queue[:i], l.queue[i+1:]...)
			return
		}
	}
}

// runPending executes the callbacks queued so far, in schedule order.
// Callbacks scheduled while running (a render requested from inside a
// paint pass) land in a fresh queue and run on the next tick.
func (l *loopScheduler) runPending() {
	pending := l.queue
	l.queue = nil
	for _, f := range pending {
		f.fn()
	}
}
