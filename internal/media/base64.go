package media

import (
	"encoding/base64"
	"fmt"
	"os"
)

func writeBase64PNG(path, b64 string) error {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return fmt.Errorf("failed to decode image data: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}

	return nil
}
