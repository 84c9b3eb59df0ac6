package middleware

import (
	"fmt"
	baseHttp "net/http"
	"time"

	"github.com/AngeelRdz/resume-angeel-dev/pkg/endpoint"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/limiter"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/portal"
)

// PublicMiddleware protects the read-only public endpoints with a simple
// in-memory rate limiter keyed by client IP. The API is anonymous, so the
// IP is the only stable request identity available.
type PublicMiddleware struct {
	rateLimiter *limiter.MemoryLimiter
}

func MakePublicMiddleware() PublicMiddleware {
	return PublicMiddleware{
		rateLimiter: limiter.NewMemoryLimiter(1*time.Minute, 60),
	}
}

func (p PublicMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		if err := p.GuardDependencies(); err != nil {
			return err
		}

		key := portal.ParseClientIP(r)

		if p.rateLimiter.TooMany(key) {
			return endpoint.TooManyRequestsError("slow down")
		}

		p.rateLimiter.Hit(key)

		return next(w, r)
	}
}

func (p PublicMiddleware) GuardDependencies() *endpoint.ApiError {
	if p.rateLimiter == nil {
		err := fmt.Errorf("public middleware missing dependencies: rateLimiter")

		return endpoint.LogInternalError("public middleware missing dependencies", err)
	}

	return nil
}
