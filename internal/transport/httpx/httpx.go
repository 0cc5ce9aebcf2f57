// Package httpx holds the pieces shared by every HTTP handler package:
// caller identity resolution and the error-to-status mapping.
package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/identity"
	portagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/agent"
	portdist "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/distribution"
	portorder "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/order"
	agentsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/agent"
	distsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/distribution"
	ordersvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/order"
	selectorsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/selector"
)

const callerKey = "caller"

// CallerIdentity resolves who is making the request from the gateway-set
// identity headers. Authentication itself happens upstream; an absent or
// unparseable identity degrades to an anonymous requester.
func CallerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := identity.Caller{Role: identity.RoleRequester}
		if v := c.GetHeader("X-Caller-ID"); v != "" {
			if id, err := uuid.Parse(v); err == nil {
				caller.ID = id
			}
		}
		switch identity.Role(c.GetHeader("X-Caller-Role")) {
		case identity.RoleAgent:
			caller.Role = identity.RoleAgent
		case identity.RoleAdmin:
			caller.Role = identity.RoleAdmin
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

// Caller returns the identity resolved by CallerIdentity.
func Caller(c *gin.Context) identity.Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(identity.Caller); ok {
			return caller
		}
	}
	return identity.Caller{Role: identity.RoleRequester}
}

// StatusFor maps service errors to HTTP status codes. The business races —
// late responses, lost CAS, exhausted attempts — are all conflicts, not
// server errors.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, portorder.ErrNotFound),
		errors.Is(err, portagent.ErrNotFound),
		errors.Is(err, portdist.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ordersvc.ErrValidation),
		errors.Is(err, agentsvc.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, distsvc.ErrForbidden),
		errors.Is(err, distsvc.ErrUnauthorized),
		errors.Is(err, ordersvc.ErrForbidden),
		errors.Is(err, agentsvc.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, distsvc.ErrAlreadyResponded),
		errors.Is(err, distsvc.ErrOrderUnavailable),
		errors.Is(err, distsvc.ErrInvalidState),
		errors.Is(err, distsvc.ErrAttemptsExhausted),
		errors.Is(err, ordersvc.ErrInvalidState),
		errors.Is(err, ordersvc.ErrAlreadyRated),
		errors.Is(err, agentsvc.ErrSuspended),
		errors.Is(err, portdist.ErrNotPending),
		errors.Is(err, portorder.ErrStatusConflict),
		errors.Is(err, selectorsvc.ErrNoAgentAvailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
