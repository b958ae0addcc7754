package cases

import (
	"fmt"
	"os"
)

func openConfig(path string) error {
	if _, err := os.Open(path); err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	if _, err := os.Open(path); err != nil {
		return fmt.Errorf("open config %w failed", err)
	}

	if _, err := os.Open(path); err != nil {
		return fmt.Errorf("two causes: %w and %w", err, err)
	}

	format := "dynamic: %w"
	if _, err := os.Open(path); err != nil {
		return fmt.Errorf(format, err)
	}

	return nil
}
