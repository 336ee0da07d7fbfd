//go:build delvedebug

package world

const debugAssertions = true
