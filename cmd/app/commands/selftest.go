package commands

import (
	"fmt"
)

// RunSelfTest exercises a full DEK encrypt/decrypt round trip to verify the
// crypto stack is operational on this machine.
func RunSelfTest(io IOTuple) error {
	services, err := BuildServices()
	if err != nil {
		return err
	}

	if err := services.Port.SelfTest(services.DekManager); err != nil {
		return fmt.Errorf("self test failed: %w", err)
	}

	fmt.Fprintln(io.Writer, "Self test passed: encrypt/decrypt round trip OK")
	return nil
}
