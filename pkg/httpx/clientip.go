package httpx

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
)

var (
	proxiesMu      sync.RWMutex
	trustedProxies []netip.Prefix
)

// SetTrustedProxies sets the proxies whose X-Forwarded-For and X-Real-IP
// headers are believed. Entries are CIDRs or bare IPs. With none configured
// the headers are ignored and clients are keyed by RemoteAddr.
func SetTrustedProxies(entries []string) error {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if strings.Contains(entry, "/") {
			p, err := netip.ParsePrefix(entry)
			if err != nil {
				return fmt.Errorf("httpx: invalid trusted proxy %q: %w", entry, err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return fmt.Errorf("httpx: invalid trusted proxy %q: %w", entry, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	proxiesMu.Lock()
	trustedProxies = prefixes
	proxiesMu.Unlock()
	return nil
}

func isTrustedProxy(addr netip.Addr) bool {
	addr = addr.Unmap()

	proxiesMu.RLock()
	defer proxiesMu.RUnlock()
	for _, p := range trustedProxies {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// IPKeyExtractor returns the client IP. Forwarding headers count only when
// the direct peer is a trusted proxy; X-Forwarded-For is then walked right to
// left past trusted hops so a client cannot pick its own key.
func IPKeyExtractor(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	peer, err := netip.ParseAddr(host)
	if err != nil || !isTrustedProxy(peer) {
		return host
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil {
				break
			}
			if !isTrustedProxy(hop) {
				return hop.Unmap().String()
			}
		}
	}

	if xri, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return xri.Unmap().String()
	}

	return peer.Unmap().String()
}
