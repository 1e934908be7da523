package middleware

import (
	"net"
	"net/http"
)

// TrustedCIDR allows requests only from the given subnet, matched against
// X-Real-IP. An invalid CIDR fails server startup; an empty one disables
// the check.
func TrustedCIDR(cidrs string) func(http.Handler) http.Handler {
	var ipnet *net.IPNet
	if cidrs != "" {
		_, n, err := net.ParseCIDR(cidrs)
		if err != nil {
			panic("invalid trusted_subnet: " + err.Error())
		}
		ipnet = n
	}

	return func(next http.Handler) http.Handler {
		if ipnet == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			xrip := r.Header.Get("X-Real-IP")
			ip := net.ParseIP(xrip)
			if ip == nil || !ipnet.Contains(ip) {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
