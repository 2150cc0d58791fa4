package devproxy

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Targets are the backends the dashboard talks to
type Targets struct {
	API      string
	Listener string
}

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, Accept, X-Request-ID",
	"Access-Control-Max-Age":       "3600",
}

// NewHandler serves staticDir and forwards /api/v1 to the backends.
// Audit routes go to the listener, everything else to the inventory API.
func NewHandler(targets Targets, staticDir string, logger *zap.Logger) (http.Handler, error) {
	apiProxy, err := newReverseProxy(targets.API, logger)
	if err != nil {
		return nil, fmt.Errorf("api target: %w", err)
	}
	listenerProxy, err := newReverseProxy(targets.Listener, logger)
	if err != nil {
		return nil, fmt.Errorf("listener target: %w", err)
	}

	mux := http.NewServeMux()

	// Health of each backend under its own path
	mux.HandleFunc("/api/v1/health/api", func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = "/api/v1/health"
		apiProxy.ServeHTTP(w, r)
	})
	mux.HandleFunc("/api/v1/health/listener", func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = "/api/v1/health"
		listenerProxy.ServeHTTP(w, r)
	})

	mux.HandleFunc("/api/v1/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/v1/audit/") {
			logger.Debug("Proxy -> listener", zap.String("method", r.Method), zap.String("path", r.URL.Path))
			listenerProxy.ServeHTTP(w, r)
			return
		}
		logger.Debug("Proxy -> api", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		apiProxy.ServeHTTP(w, r)
	})

	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	return corsMiddleware(mux), nil
}

func newReverseProxy(rawURL string, logger *zap.Logger) (*httputil.ReverseProxy, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q", rawURL)
	}

	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.Out.Host = target.Host
			r.SetXForwarded()
		},
		// The backends send their own CORS headers; ours win
		ModifyResponse: func(resp *http.Response) error {
			for header := range corsHeaders {
				resp.Header.Del(header)
			}
			resp.Header.Del("Access-Control-Allow-Credentials")
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Warn("Backend unreachable",
				zap.String("target", target.String()),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			w.WriteHeader(http.StatusBadGateway)
		},
	}, nil
}

// corsMiddleware allows the dashboard page to be opened from any origin
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for header, value := range corsHeaders {
			w.Header().Set(header, value)
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
