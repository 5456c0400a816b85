package mock

import (
	"context"

	"github.com/garylea7/siteport"
)

var _ siteport.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of siteport.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
