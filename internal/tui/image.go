package tui

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

const maxImageBytes = 5 << 20

// imageDataURL reads an image file into a data URL.
func imageDataURL(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reference image: %w", err)
	}

	if info.Size() > maxImageBytes {
		return "", fmt.Errorf("reference image is larger than 5MB")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reference image: %w", err)
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("reference image is %s, not an image", contentType)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
