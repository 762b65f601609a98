package client

import (
	"net"
	"net/http"
	"time"
)

const (
	defaultClientTimeout         = 5 * time.Second
	defaultResponseHeaderTimeout = 3 * time.Second
	defaultIdleConnTimeout       = 90 * time.Second
	defaultTLSHandshakeTimeout   = 5 * time.Second
	defaultMaxIdleConnsPerHost   = 16
	defaultDialerTimeout         = 2 * time.Second
	defaultDialerKeepAlive       = 30 * time.Second
)

// TransportConfig tunes the *http.Client used for the remote banking service.
// Zero values are replaced by defaults so a request can never hang forever.
type TransportConfig struct {
	ClientTimeout         time.Duration
	ResponseHeaderTimeout time.Duration
	IdleConnTimeout       time.Duration
	TLSHandshakeTimeout   time.Duration
	MaxIdleConnsPerHost   int
	DialerTimeout         time.Duration
	DialerKeepAlive       time.Duration
}

func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		ClientTimeout:         defaultClientTimeout,
		ResponseHeaderTimeout: defaultResponseHeaderTimeout,
		IdleConnTimeout:       defaultIdleConnTimeout,
		TLSHandshakeTimeout:   defaultTLSHandshakeTimeout,
		MaxIdleConnsPerHost:   defaultMaxIdleConnsPerHost,
		DialerTimeout:         defaultDialerTimeout,
		DialerKeepAlive:       defaultDialerKeepAlive,
	}
}

func NewHTTPClient(cfg TransportConfig) *http.Client {
	sanitizeTransportConfig(&cfg)

	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.DialerTimeout,
			KeepAlive: cfg.DialerKeepAlive,
		}).DialContext,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,
		ResponseHeaderTimeout: cfg.ResponseHeaderTimeout,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.ClientTimeout,
	}
}

func sanitizeTransportConfig(c *TransportConfig) {
	if c.ClientTimeout <= 0 {
		c.ClientTimeout = defaultClientTimeout
	}
	if c.ResponseHeaderTimeout <= 0 || c.ResponseHeaderTimeout > c.ClientTimeout {
		c.ResponseHeaderTimeout = min(defaultResponseHeaderTimeout, c.ClientTimeout)
	}
	if c.IdleConnTimeout <= 0 {
		c.IdleConnTimeout = defaultIdleConnTimeout
	}
	if c.TLSHandshakeTimeout <= 0 {
		c.TLSHandshakeTimeout = defaultTLSHandshakeTimeout
	}
	if c.MaxIdleConnsPerHost <= 0 {
		c.MaxIdleConnsPerHost = defaultMaxIdleConnsPerHost
	}
	if c.DialerTimeout <= 0 {
		c.DialerTimeout = defaultDialerTimeout
	}
	if c.DialerKeepAlive <= 0 {
		c.DialerKeepAlive = defaultDialerKeepAlive
	}
}
