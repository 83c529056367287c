package commands

import (
	"encoding/json"
	"fmt"
	"os"
)

// RunInspect prints the metadata header of an encrypted container without
// decrypting it. No password is required.
func RunInspect(inputPath, format string, io IOTuple) error {
	services, err := BuildServices()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	header, err := services.Port.InspectContainer(data)
	if err != nil {
		return err
	}

	if format == "json" {
		encoded, err := json.MarshalIndent(header, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(io.Writer, string(encoded))
		return nil
	}

	fmt.Fprintf(io.Writer, "Signature:         %s\n", header.Signature)
	fmt.Fprintf(io.Writer, "Format version:    %d\n", header.Version)
	fmt.Fprintf(io.Writer, "Original filename: %s\n", header.OriginalFilename)
	fmt.Fprintf(io.Writer, "Original MIME:     %s\n", header.OriginalMimeType)
	fmt.Fprintf(io.Writer, "Original size:     %d bytes\n", header.OriginalSize)
	fmt.Fprintf(io.Writer, "Encrypted size:    %d bytes\n", header.EncryptedSize)
	fmt.Fprintf(io.Writer, "Created at:        %s\n", header.CreatedAt)
	return nil
}
