package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/sergioruizlaf/user-service/internal/jwt"
	"github.com/sergioruizlaf/user-service/internal/logger"
)

// Decision is the outcome of matching a request against the access policy.
type Decision int

const (
	// Allow lets the request through without a token.
	Allow Decision = iota
	// Authenticate requires a valid, non-expired bearer token.
	Authenticate
)

// Rule binds an HTTP method and a path prefix to a decision. An empty
// method matches any method.
type Rule struct {
	Method   string
	Prefix   string
	Decision Decision
}

// AllowRule builds a rule that permits matching requests.
func AllowRule(method, prefix string) Rule {
	return Rule{Method: method, Prefix: prefix, Decision: Allow}
}

// AuthRule builds a rule that requires a token for matching requests.
func AuthRule(method, prefix string) Rule {
	return Rule{Method: method, Prefix: prefix, Decision: Authenticate}
}

// AccessPolicy is an ordered rule table evaluated before business logic.
// The first matching rule wins; a request matching no rule is allowed,
// so the permissive fallback is visible here rather than implied.
type AccessPolicy struct {
	rules []Rule
}

// NewAccessPolicy creates a policy from rules in evaluation order.
func NewAccessPolicy(rules ...Rule) *AccessPolicy {
	return &AccessPolicy{rules: rules}
}

// Decide returns the decision for a (method, path) pair.
func (p *AccessPolicy) Decide(method, path string) Decision {
	for _, rule := range p.rules {
		if rule.Method != "" && rule.Method != method {
			continue
		}
		if !strings.HasPrefix(path, rule.Prefix) {
			continue
		}
		return rule.Decision
	}
	return Allow
}

// ClaimsParser defines the token operations needed by the middleware.
type ClaimsParser interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var claimsKey = contextKey{}

// setClaimsToContext stores verified claims in the context
func setClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves the verified claims from the context.
// Returns nil if the request was not authenticated.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}

// AuthMiddleware returns a middleware that gates requests on the access
// policy. Protected requests get their bearer token verified and the
// resulting identity/authorities stored in the request context; missing,
// invalid and expired tokens are all rejected with 403.
func AuthMiddleware(policy *AccessPolicy, parser ClaimsParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if policy.Decide(r.Method, r.URL.Path) == Allow {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, err := parser.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			claims, err := parser.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(setClaimsToContext(ctx, claims)))
		})
	}
}
