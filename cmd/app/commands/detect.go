package commands

import (
	"encoding/json"
	"fmt"
	"os"
)

// RunDetect classifies a local file as encrypted or plaintext using the
// content heuristics and prints the verdict.
func RunDetect(inputPath, format string, io IOTuple) error {
	services, err := BuildServices()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	result := services.Detector.Detect(nil, data)

	if format == "json" {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(io.Writer, string(encoded))
		return nil
	}

	fmt.Fprintf(io.Writer, "Encrypted:  %t\n", result.IsEncrypted)
	fmt.Fprintf(io.Writer, "Type:       %s\n", result.EncryptionType)
	fmt.Fprintf(io.Writer, "Confidence: %.2f\n", result.Confidence)
	fmt.Fprintf(io.Writer, "Reason:     %s\n", result.Reason)
	if result.Metadata.Entropy != nil {
		fmt.Fprintf(io.Writer, "Entropy:    %.3f bits/byte\n", *result.Metadata.Entropy)
	}
	if result.Metadata.KnownFormat != "" {
		fmt.Fprintf(io.Writer, "Format:     %s\n", result.Metadata.KnownFormat)
	}
	return nil
}
