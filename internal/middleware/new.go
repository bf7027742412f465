package middleware

import (
	pkgLog "calendar-clipper/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *clientLimiter
}

func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newClientLimiter(requestsPerMin),
	}
}
