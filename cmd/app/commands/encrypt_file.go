package commands

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

// RunEncryptFile encrypts a local file into a portable encrypted container.
// The password is read interactively; the output carries its own salt and IV,
// so the container file plus the password is everything needed to recover the
// original anywhere.
func RunEncryptFile(inputPath, outputPath, mimeType string, io IOTuple) error {
	services, err := BuildServices()
	if err != nil {
		return err
	}

	plaintext, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(inputPath))
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
	}
	if outputPath == "" {
		outputPath = inputPath + ".enc"
	}

	password, err := readPassword(io, "Password: ")
	if err != nil {
		return err
	}

	wrapped, err := services.Codec.Create(plaintext, filepath.Base(inputPath), mimeType, password)
	if err != nil {
		return fmt.Errorf("failed to create encrypted container: %w", err)
	}

	if err := os.WriteFile(outputPath, wrapped, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(io.Writer, "Encrypted %s (%d bytes) -> %s (%d bytes)\n",
		inputPath, len(plaintext), outputPath, len(wrapped))
	return nil
}
