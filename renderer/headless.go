package renderer

// NullScene records proxies without drawing them. Used for headless runs and tests.
type NullScene struct {
	proxySet
}

// NewNullScene creates an empty headless scene.
func NewNullScene() *NullScene {
	return &NullScene{proxySet: newProxySet()}
}
