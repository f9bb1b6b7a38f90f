package services

import (
	"net"
	"net/http"
	"strings"

	"github.com/ilya-burinskiy/utilapi/internal/app/models"
)

// Introspect describes the client that sent r
func Introspect(r *http.Request) models.Identity {
	return models.Identity{
		IPAddress: clientIP(r),
		Language:  r.Header.Get("Accept-Language"),
		Software:  r.Header.Get("User-Agent"),
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
