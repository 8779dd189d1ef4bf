// Package ratelimit provides a fixed-window rate limiter on top of the
// connection abstraction, so it works unchanged with either driver client.
//
// Each key gets a counter that expires after the window length. The counter
// increment and the expiry are performed by one server-side script, so
// concurrent callers from many processes share a consistent window.
//
// Usage:
//
//	limiter := ratelimit.New(client, 100, time.Minute)
//
//	res, err := limiter.Allow(ctx, "api:"+userID)
//	if err != nil {
//		return err
//	}
//	if !res.Allowed {
//		return ErrTooManyRequests
//	}
//
// Fixed windows admit up to twice the limit across a window boundary in the
// worst case. For most quota-style limits that is acceptable; if strict
// smoothing matters, put a smaller limit on a shorter window.
package ratelimit
