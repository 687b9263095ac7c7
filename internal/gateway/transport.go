package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
)

// ErrRequestRepeated is returned instead of sending a request a second time.
// The rate-limit waiter re-issues a request it considers limited once the
// limit has passed; every GitHub call here goes out exactly once.
var ErrRequestRepeated = errors.New("GitHub request not repeated after rate limit")

type attemptsKey struct{}

type attempts struct {
	n          atomic.Int32
	lastStatus atomic.Value // string
}

// singleAttempt marks each request it forwards so that attemptLimiter,
// placed further down the same chain, can refuse repeats.
type singleAttempt struct {
	next http.RoundTripper
}

func (t singleAttempt) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := context.WithValue(req.Context(), attemptsKey{}, &attempts{})
	return t.next.RoundTrip(req.WithContext(ctx))
}

// attemptLimiter lets a marked request reach base once.
type attemptLimiter struct {
	base http.RoundTripper
}

func (t attemptLimiter) RoundTrip(req *http.Request) (*http.Response, error) {
	a, ok := req.Context().Value(attemptsKey{}).(*attempts)
	if !ok {
		return t.base.RoundTrip(req)
	}
	if a.n.Add(1) > 1 {
		status, _ := a.lastStatus.Load().(string)
		return nil, fmt.Errorf("%w: upstream answered %s", ErrRequestRepeated, status)
	}
	resp, err := t.base.RoundTrip(req)
	if resp != nil {
		a.lastStatus.Store(resp.Status)
	}
	return resp, err
}
