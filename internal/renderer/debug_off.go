//go:build !gldebug

package renderer

const debugBuild = false
