package connector

import (
	"io"
	"net/http"
	"time"
)

type HTTPRequest struct {
	Method    string
	URL       string
	Headers   map[string]string
	Body      io.Reader
	BasicAuth *BasicAuth
}

type BasicAuth struct {
	Username string
	Password string
}

type HTTPResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Request    *HTTPRequest
}

// IsSuccess reports a 2xx status.
func (r *HTTPResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type HTTPClientConfig struct {
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	DialTimeout         time.Duration
	KeepAlive           time.Duration
}
