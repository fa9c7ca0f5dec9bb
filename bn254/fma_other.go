//go:build !amd64 && !arm64

package bn254

func hasHardwareFMA() bool { return false }
