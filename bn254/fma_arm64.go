package bn254

import "golang.org/x/sys/cpu"

// FMADD is part of the base ARMv8 floating-point unit.
func hasHardwareFMA() bool { return cpu.ARM64.HasFP }
