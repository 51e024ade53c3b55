package systems

// System IDs, in execution order within a tick.
const (
	IDInput       = "input"
	IDMovement    = "movement"
	IDConsumption = "consumption"
	IDGrowth      = "growth"
	IDReposition  = "reposition"
	IDCollision   = "collision"
	IDCommands    = "commands"
	IDProxySync   = "proxy_sync"
	IDTelemetry   = "telemetry"
)

// SystemInfo describes a game system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "core", "engine")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems to the registry.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: IDInput, Name: "Input", Description: "Maps key presses to a direction", Category: "core"})
	r.Register(SystemInfo{ID: IDMovement, Name: "Movement", Description: "Integrates head position and wraps at edges", Category: "core"})
	r.Register(SystemInfo{ID: IDConsumption, Name: "Consumption", Description: "Eats food in reach and requests a new one", Category: "core"})
	r.Register(SystemInfo{ID: IDGrowth, Name: "Growth", Description: "Applies manual growth requests", Category: "core"})
	r.Register(SystemInfo{ID: IDReposition, Name: "Reposition", Description: "Moves segments onto the trail", Category: "core"})
	r.Register(SystemInfo{ID: IDCollision, Name: "Collision", Description: "Resets the chain on self-collision", Category: "core"})

	r.Register(SystemInfo{ID: IDCommands, Name: "Commands", Description: "Applies deferred spawns and despawns", Category: "engine"})
	r.Register(SystemInfo{ID: IDProxySync, Name: "Proxy Sync", Description: "Recreates moved visual proxies", Category: "engine"})
	r.Register(SystemInfo{ID: IDTelemetry, Name: "Telemetry", Description: "Flushes stats windows", Category: "engine"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered systems.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// ByCategory returns systems filtered by category.
func (r *SystemRegistry) ByCategory(category string) []SystemInfo {
	var result []SystemInfo
	for _, info := range r.systems {
		if info.Category == category {
			result = append(result, info)
		}
	}
	return result
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
