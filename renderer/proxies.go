// Package renderer owns the visual proxies that stand in for game entities.
package renderer

import (
	"fmt"
	"image/color"

	"github.com/pthm-cable/snek/components"
	"gonum.org/v1/gonum/spatial/r3"
)

// proxy is a unit cube drawn at a fixed position.
type proxy struct {
	at    r3.Vec
	color color.RGBA
}

// proxySet hands out handles for proxies and tracks the live ones.
type proxySet struct {
	next    components.ProxyHandle
	live    map[components.ProxyHandle]proxy
	created uint64
	dropped uint64
}

func newProxySet() proxySet {
	return proxySet{live: make(map[components.ProxyHandle]proxy)}
}

// CreateProxy registers a proxy at the given position and returns its handle.
// Handles are never reused.
func (s *proxySet) CreateProxy(at r3.Vec, c color.RGBA) components.ProxyHandle {
	s.next++
	s.live[s.next] = proxy{at: at, color: c}
	s.created++
	return s.next
}

// DestroyProxy removes a proxy. Destroying an unknown handle panics,
// since it means the game lost track of its entities.
func (s *proxySet) DestroyProxy(h components.ProxyHandle) {
	if _, ok := s.live[h]; !ok {
		panic(fmt.Sprintf("renderer: destroy of unknown proxy %d", h))
	}
	delete(s.live, h)
	s.dropped++
}

// Live returns the number of proxies currently alive.
func (s *proxySet) Live() int {
	return len(s.live)
}

// Churn returns the total number of proxies created and destroyed.
func (s *proxySet) Churn() (created, destroyed uint64) {
	return s.created, s.dropped
}

// At returns the position and color of a live proxy.
func (s *proxySet) At(h components.ProxyHandle) (r3.Vec, color.RGBA, bool) {
	p, ok := s.live[h]
	return p.at, p.color, ok
}
