package components

import "gonum.org/v1/gonum/spatial/r3"

// ProxyHandle is an opaque reference to a visual proxy owned by the renderer.
type ProxyHandle uint64

// Proxy links an entity to its visual proxy.
type Proxy struct {
	Handle ProxyHandle
	Kind   Kind
	At     r3.Vec // position the proxy was created at
}

// Stale reports whether the proxy no longer matches the entity's position.
func (p *Proxy) Stale(pos *Position) bool {
	return p.At != pos.Vec
}
