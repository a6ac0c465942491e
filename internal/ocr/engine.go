/**
 * Tesseract OCR engine
 *
 * Wraps gosseract behind the Engine capability so the selector can be
 * exercised against fakes and so a server without Tesseract installed can
 * simply run with no engine configured.
 */

package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Engine converts an image to text. An empty lang selects the backend's
// default language. Implementations are synchronous round-trips; callers
// needing timeouts wrap the context themselves.
type Engine interface {
	ImageToText(ctx context.Context, image []byte, lang string) (string, error)
}

// TesseractEngine runs OCR through a local Tesseract installation.
type TesseractEngine struct{}

// NewTesseractEngine creates a Tesseract-backed engine.
func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{}
}

// ImageToText performs one OCR pass. A fresh gosseract client per call
// keeps the engine safe for concurrent requests.
func (t *TesseractEngine) ImageToText(ctx context.Context, image []byte, lang string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if lang != "" {
		if err := client.SetLanguage(lang); err != nil {
			return "", fmt.Errorf("failed to set language %q: %w", lang, err)
		}
	}

	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract OCR failed: %w", err)
	}

	return text, nil
}
