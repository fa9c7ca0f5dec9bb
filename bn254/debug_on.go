//go:build skyscraperdebug

package bn254

const debugChecks = true
