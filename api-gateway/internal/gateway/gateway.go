package gateway

import (
	"io"
	"net/http"
	"strings"

	"qrdine/apperr"
	"qrdine/httpx"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	MenuSvcURL      string
	OrderSvcURL     string
	RateSvcURL      string
	AnalyticsSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger *zap.Logger
}

func NewGateway(config Config, client HTTPClient, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		config: config,
		client: client,
		logger: logger,
	}
}

// hop-by-hop headers are not forwarded in either direction.
var hopHeaders = map[string]bool{
	"Connection":          true,
	"Keep-Alive":          true,
	"Proxy-Authenticate":  true,
	"Proxy-Authorization": true,
	"Te":                  true,
	"Trailer":             true,
	"Transfer-Encoding":   true,
	"Upgrade":             true,
}

func copyHeaders(dst, src http.Header) {
	for k, v := range src {
		if hopHeaders[http.CanonicalHeaderKey(k)] {
			continue
		}
		dst[k] = v
	}
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	g.logger.Debug("proxy", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.String("target", targetURL))

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		httpx.WriteError(w, g.logger, err)
		return
	}
	copyHeaders(req.Header, r.Header)
	req.Header.Set("X-Forwarded-Host", r.Host)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("upstream unreachable", zap.String("target", targetURL), zap.Error(err))
		httpx.WriteJSON(w, http.StatusBadGateway, map[string]string{"error": "upstream service unavailable"})
		return
	}
	defer resp.Body.Close()

	copyHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn("failed to copy upstream response", zap.Error(err))
	}
}

// Target picks the upstream service for an /api path. The second result is
// false for paths no service owns.
func (g *Gateway) Target(path string) (string, bool) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 || segments[0] != "api" {
		return "", false
	}

	switch segments[1] {
	case "orders":
		if len(segments) >= 4 && segments[3] == "rating" {
			return g.config.RateSvcURL, true
		}
		return g.config.OrderSvcURL, true
	case "carts":
		return g.config.OrderSvcURL, true
	case "dashboard":
		if len(segments) >= 4 {
			switch segments[3] {
			case "orders":
				return g.config.OrderSvcURL, true
			case "metrics", "ratings":
				return g.config.AnalyticsSvcURL, true
			}
		}
		return g.config.MenuSvcURL, true
	case "hotels", "auth":
		return g.config.MenuSvcURL, true
	}
	return "", false
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	target, ok := g.Target(r.URL.Path)
	if !ok {
		httpx.WriteError(w, g.logger, apperr.NotFound("API route not found"))
		return
	}
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.Use(httpx.Instrument("api-gateway"))
	r.HandleFunc("/health", httpx.Health("api-gateway")).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, g.logger, apperr.NotFound("not found"))
	})
	return r
}
