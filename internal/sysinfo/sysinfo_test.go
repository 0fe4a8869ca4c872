package sysinfo

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestSIMDLevelString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		level SIMDLevel
		want  string
	}{
		{SIMDNone, "none"},
		{SIMDAVX2, "AVX2"},
		{SIMDAVX512, "AVX-512"},
		{SIMDLevel(99), "SIMDLevel(99)"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("SIMDLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCPUFeatures(t *testing.T) {
	t.Parallel()
	tests := []struct {
		f    CPUFeatures
		str  string
		simd SIMDLevel
	}{
		{CPUFeatures{}, "none", SIMDNone},
		{CPUFeatures{BMI2: true, ADX: true}, "BMI2 ADX", SIMDNone},
		{CPUFeatures{AVX2: true}, "AVX2", SIMDAVX2},
		{CPUFeatures{AVX2: true, AVX512: true}, "AVX2 AVX-512", SIMDAVX512},
		{CPUFeatures{ASIMD: true}, "ASIMD", SIMDNone},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.f.SIMD(); got != tt.simd {
			t.Errorf("SIMD() = %v, want %v", got, tt.simd)
		}
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()
	r := Collect()
	if r.NumCPU < 1 || r.GoVersion != runtime.Version() {
		t.Errorf("unexpected report: %+v", r)
	}
	if r.WordBits != 32 && r.WordBits != 64 {
		t.Errorf("WordBits = %d", r.WordBits)
	}
	if runtime.GOARCH != "amd64" && runtime.GOARCH != "386" && (r.Features.BMI2 || r.Features.AVX2) {
		t.Errorf("x86 features reported on %s", runtime.GOARCH)
	}

	var buf bytes.Buffer
	r.Write(&buf)
	for _, want := range []string{"go:", "platform:  " + runtime.GOOS + "/" + runtime.GOARCH, "features:", "simd:"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("report should contain %q, got:\n%s", want, buf.String())
		}
	}
}
