// Package lock provides a single-instance distributed lock on top of the
// connection abstraction, so it works unchanged with either driver client.
//
// The lock stores a random token under the lock key with SET NX and a TTL.
// Release and Refresh run server-side scripts that first compare the stored
// token, which prevents a holder whose lock already expired from deleting or
// extending a lock that another process has since acquired.
//
// Usage:
//
//	client, err := goredis.NewClient(goredis.Config{Host: "localhost", Port: "6379"})
//	if err != nil {
//		return err
//	}
//
//	l := lock.New(client, "jobs:nightly-report", 30*time.Second)
//	if err := l.Acquire(ctx); err != nil {
//		if errors.Is(err, lock.ErrNotAcquired) {
//			return nil // someone else is running the job
//		}
//		return err
//	}
//	defer l.Release(ctx)
//
// Long-running holders should call Refresh periodically, well inside the
// TTL, and treat ErrNotHeld as loss of the lock:
//
//	if err := l.Refresh(ctx); errors.Is(err, lock.ErrNotHeld) {
//		// the TTL lapsed; stop doing protected work
//	}
//
// AcquireWithRetry polls until the lock is free, the wait budget runs out,
// or the context is cancelled.
package lock
