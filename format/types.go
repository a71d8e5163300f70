package format

import "strings"

type (
	StrategyType    uint8
	CompressionType uint8
)

const (
	StrategyDirect   StrategyType = 0x1 // StrategyDirect represents the single-pass splitter.
	StrategyStrided  StrategyType = 0x2 // StrategyStrided represents the per-channel strided splitter.
	StrategyParallel StrategyType = 0x3 // StrategyParallel represents the strided splitter with concurrent channel passes.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (s StrategyType) String() string {
	switch s {
	case StrategyDirect:
		return "Direct"
	case StrategyStrided:
		return "Strided"
	case StrategyParallel:
		return "Parallel"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// strategyFromString maps lowercase strategy names to StrategyType.
var strategyFromString = map[string]StrategyType{
	"direct":   StrategyDirect,
	"strided":  StrategyStrided,
	"parallel": StrategyParallel,
}

// ParseStrategyType returns the StrategyType for a given name (case-insensitive).
// Returns StrategyType(0) and false for unknown names.
func ParseStrategyType(name string) (StrategyType, bool) {
	s, ok := strategyFromString[strings.ToLower(name)]

	return s, ok
}

// compressionFromString maps lowercase codec names to CompressionType.
var compressionFromString = map[string]CompressionType{
	"none": CompressionNone,
	"zstd": CompressionZstd,
	"s2":   CompressionS2,
	"lz4":  CompressionLZ4,
}

// ParseCompressionType returns the CompressionType for a given name
// (case-insensitive). Returns CompressionType(0) and false for unknown names.
func ParseCompressionType(name string) (CompressionType, bool) {
	c, ok := compressionFromString[strings.ToLower(name)]

	return c, ok
}
