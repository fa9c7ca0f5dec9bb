package bn254

import "golang.org/x/sys/cpu"

// math.FMA is only fused on amd64 when the CPU has FMA3; the software
// fallback rounds to nearest regardless of MXCSR.
func hasHardwareFMA() bool { return cpu.X86.HasFMA && cpu.X86.HasAVX }
