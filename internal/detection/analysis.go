package detection

import "math"

// Content analysis thresholds. Entropy is measured in bits per byte over the
// sample; ciphertext from a modern cipher sits near the 8.0 ceiling while
// structured plaintext rarely exceeds 6.
const (
	defaultSampleSize     = 2048
	defaultTextSampleSize = 500

	printableThreshold    = 0.8
	whitespaceRatioFloor  = 0.05
	whitespaceRatioCeil   = 0.5
	entropyEncrypted      = 7.5
	entropyHighConfidence = 7.8
	entropyPlainCeil      = 5.0
)

// ContentAnalysis is the verdict of the byte-level heuristics, before any
// metadata is considered.
type ContentAnalysis struct {
	KnownFormat     string
	IsKnownFormat   bool
	IsLikelyText    bool
	Entropy         float64
	LikelyEncrypted bool
	Confidence      float64
	Reason          string
}

// ShannonEntropy computes the Shannon entropy of data in bits per byte.
// Empty input has zero entropy.
func ShannonEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	total := float64(len(data))
	entropy := 0.0
	for _, count := range counts {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// AnalyzeContent runs the heuristics over at most sampleSize leading bytes:
// known file signatures first, then the printable-text check over a smaller
// prefix, then Shannon entropy as the tie-breaker. The checks are ordered by
// reliability; the first conclusive one wins.
func (d *Detector) AnalyzeContent(data []byte) ContentAnalysis {
	sample := data
	if len(sample) > d.sampleSize {
		sample = sample[:d.sampleSize]
	}

	if format, ok := matchSignature(sample); ok {
		return ContentAnalysis{
			KnownFormat:     format,
			IsKnownFormat:   true,
			Entropy:         ShannonEntropy(sample),
			LikelyEncrypted: false,
			Confidence:      0.95,
			Reason:          "known file format: " + format,
		}
	}

	if isLikelyText(sample, d.textSampleSize) {
		return ContentAnalysis{
			IsLikelyText:    true,
			Entropy:         ShannonEntropy(sample),
			LikelyEncrypted: false,
			Confidence:      0.9,
			Reason:          "content is readable text",
		}
	}

	entropy := ShannonEntropy(sample)
	switch {
	case entropy > entropyHighConfidence:
		return ContentAnalysis{
			Entropy:         entropy,
			LikelyEncrypted: true,
			Confidence:      0.9,
			Reason:          "very high entropy content",
		}
	case entropy > entropyEncrypted:
		return ContentAnalysis{
			Entropy:         entropy,
			LikelyEncrypted: true,
			Confidence:      0.7,
			Reason:          "high entropy content",
		}
	case entropy < entropyPlainCeil:
		return ContentAnalysis{
			Entropy:         entropy,
			LikelyEncrypted: false,
			Confidence:      0.8,
			Reason:          "low entropy content",
		}
	default:
		return ContentAnalysis{
			Entropy:         entropy,
			LikelyEncrypted: false,
			Confidence:      0.4,
			Reason:          "ambiguous entropy content",
		}
	}
}

// isLikelyText reports whether the leading textSampleSize bytes read like
// natural text: mostly printable ASCII or common whitespace, with a plausible
// share of whitespace among them. Base64 blobs fail the whitespace check,
// binary data fails the printable check.
func isLikelyText(data []byte, textSampleSize int) bool {
	sample := data
	if len(sample) > textSampleSize {
		sample = sample[:textSampleSize]
	}
	if len(sample) == 0 {
		return false
	}

	printable := 0
	whitespace := 0
	for _, b := range sample {
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			printable++
			whitespace++
		case b >= 0x20 && b < 0x7F:
			printable++
		}
	}

	printableRatio := float64(printable) / float64(len(sample))
	if printableRatio <= printableThreshold {
		return false
	}
	if printable == 0 {
		return false
	}

	whitespaceRatio := float64(whitespace) / float64(printable)
	return whitespaceRatio > whitespaceRatioFloor && whitespaceRatio < whitespaceRatioCeil
}
