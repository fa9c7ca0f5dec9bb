//go:build skyscraperdebug

package rounding

const debugChecks = true
