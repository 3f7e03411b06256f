package gate

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/clinicore/clinickit/pkg/tenant"
)

// Config holds the environment-driven middleware settings.
type Config struct {
	// RedirectPath is the canonical "manage subscription" location
	// non-entitled requests are sent to.
	RedirectPath string `env:"GATE_REDIRECT_PATH" envDefault:"/app/subscription"`
}

// ErrorHandler handles failures to obtain the facts behind an
// entitlement decision. It must never let the request through.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type config struct {
	redirectPath string
	errorHandler ErrorHandler
	logger       *slog.Logger
	now          func() time.Time
}

// Option configures the middleware.
type Option func(*config)

// WithRedirectPath overrides the default subscription-management path.
func WithRedirectPath(path string) Option {
	return func(c *config) {
		if path != "" {
			c.redirectPath = path
		}
	}
}

// WithConfig applies an environment-loaded Config.
func WithConfig(cfg Config) Option {
	return func(c *config) {
		if cfg.RedirectPath != "" {
			c.redirectPath = cfg.RedirectPath
		}
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) {
		c.errorHandler = handler
	}
}

// WithLogger sets a custom logger for denial events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	// Fail closed: a missing tenant means the decision cannot be made,
	// never that access is granted.
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// Middleware guards a protected surface. It reads the tenant from the
// request context (placed there by the tenant-resolution layer), derives
// the entitlement decision, and redirects non-entitled requests to the
// subscription-management page with a machine-readable reason code.
func Middleware(res Resource, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		redirectPath: "/app/subscription",
		errorHandler: defaultErrorHandler,
		logger:       slog.Default(),
		now:          func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !res.RequiresSubscription {
				next.ServeHTTP(w, r)
				return
			}

			t, ok := tenant.FromContext(r.Context())
			if !ok || t == nil {
				cfg.errorHandler(w, r, tenant.ErrNoTenantInContext)
				return
			}

			if IsEntitled(HasActiveSubscription(t, cfg.now()), res) {
				next.ServeHTTP(w, r)
				return
			}

			reason := DenialReason(t)
			cfg.logger.InfoContext(r.Context(), "access denied",
				slog.String("tenant_id", t.ID.String()),
				slog.String("reason", reason),
				slog.String("path", r.URL.Path),
			)

			http.Redirect(w, r, redirectURL(cfg.redirectPath, reason), http.StatusSeeOther)
		})
	}
}

func redirectURL(path, reason string) string {
	return path + "?reason=" + url.QueryEscape(reason)
}
