//go:build !delvedebug

package world

const debugAssertions = false
