package renderer

import (
	"GLQuad/internal/logger"

	"go.uber.org/zap"
)

// UniformCache caches uniform locations to avoid repeated glGetUniformLocation calls
type UniformCache struct {
	api       GL
	locations map[string]int32
	program   uint32
}

// NewUniformCache creates a new uniform cache for a shader program
func NewUniformCache(api GL, program uint32) *UniformCache {
	return &UniformCache{
		api:       api,
		locations: make(map[string]int32),
		program:   program,
	}
}

// GetLocation returns the cached uniform location or fetches and caches it.
// Missing uniforms are cached as -1 and reported once.
func (uc *UniformCache) GetLocation(name string) int32 {
	if loc, exists := uc.locations[name]; exists {
		return loc
	}

	var loc int32
	GLCall(uc.api, "glGetUniformLocation", func() { loc = uc.api.GetUniformLocation(uc.program, name) })
	if loc == -1 {
		logger.Log.Warn("Uniform does not exist", zap.String("name", name), zap.Uint32("program", uc.program))
	}
	uc.locations[name] = loc
	return loc
}

// Len returns the number of cached names.
func (uc *UniformCache) Len() int {
	return len(uc.locations)
}

// Clear clears the cache (call when shader program changes)
func (uc *UniformCache) Clear() {
	uc.locations = make(map[string]int32)
}
