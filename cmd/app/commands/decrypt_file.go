package commands

import (
	"fmt"
	"os"
	"path/filepath"
)

// RunDecryptFile opens an encrypted container with an interactively supplied
// password and writes the recovered plaintext. When no output path is given,
// the original filename from the container header is used.
func RunDecryptFile(inputPath, outputPath string, io IOTuple) error {
	services, err := BuildServices()
	if err != nil {
		return err
	}

	wrapped, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if !services.Codec.IsContainer(wrapped) {
		return fmt.Errorf("%s is not an encrypted container", inputPath)
	}

	password, err := readPassword(io, "Password: ")
	if err != nil {
		return err
	}

	result, err := services.Codec.Decrypt(wrapped, password)
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(inputPath), result.OriginalFilename)
	}

	if err := os.WriteFile(outputPath, result.Plaintext, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(io.Writer, "Decrypted %s -> %s (%d bytes, %s)\n",
		inputPath, outputPath, len(result.Plaintext), result.OriginalMimeType)
	return nil
}
