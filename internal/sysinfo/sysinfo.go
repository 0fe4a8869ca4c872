// Package sysinfo describes the host for "arithmos version -v": Go
// runtime, processor count and the CPU features relevant to multi-word
// arithmetic.
package sysinfo

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// SIMDLevel is the widest vector extension available.
type SIMDLevel int

const (
	SIMDNone SIMDLevel = iota
	SIMDAVX2
	SIMDAVX512
)

func (l SIMDLevel) String() string {
	switch l {
	case SIMDNone:
		return "none"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	}
	return fmt.Sprintf("SIMDLevel(%d)", int(l))
}

// CPUFeatures lists the extensions that speed up carry chains and wide
// multiplication. Fields for other architectures stay false.
type CPUFeatures struct {
	BMI2   bool // MULX
	ADX    bool // ADCX/ADOX
	AVX2   bool
	AVX512 bool
	// ASIMD is the arm64 Advanced SIMD unit.
	ASIMD bool
}

// GetCPUFeatures probes the running processor.
func GetCPUFeatures() CPUFeatures {
	return CPUFeatures{
		BMI2:   cpu.X86.HasBMI2,
		ADX:    cpu.X86.HasADX,
		AVX2:   cpu.X86.HasAVX2,
		AVX512: cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW,
		ASIMD:  cpu.ARM64.HasASIMD,
	}
}

// SIMD returns the widest available x86 vector level.
func (f CPUFeatures) SIMD() SIMDLevel {
	switch {
	case f.AVX512:
		return SIMDAVX512
	case f.AVX2:
		return SIMDAVX2
	}
	return SIMDNone
}

// String lists the present features, or "none".
func (f CPUFeatures) String() string {
	var names []string
	for _, feat := range []struct {
		name string
		on   bool
	}{
		{"BMI2", f.BMI2}, {"ADX", f.ADX}, {"AVX2", f.AVX2}, {"AVX-512", f.AVX512}, {"ASIMD", f.ASIMD},
	} {
		if feat.on {
			names = append(names, feat.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}

// Report is the host description printed by version -v.
type Report struct {
	GoVersion string
	OS        string
	Arch      string
	NumCPU    int
	WordBits  int
	Features  CPUFeatures
}

// Collect gathers a Report for the running process.
func Collect() Report {
	return Report{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		WordBits:  32 << (^uint(0) >> 63),
		Features:  GetCPUFeatures(),
	}
}

// Write prints r as aligned "key: value" lines.
func (r Report) Write(w io.Writer) {
	fmt.Fprintf(w, "go:        %s\n", r.GoVersion)
	fmt.Fprintf(w, "platform:  %s/%s (%d-bit words)\n", r.OS, r.Arch, r.WordBits)
	fmt.Fprintf(w, "cpus:      %d\n", r.NumCPU)
	fmt.Fprintf(w, "features:  %s\n", r.Features)
	fmt.Fprintf(w, "simd:      %s\n", r.Features.SIMD())
}
