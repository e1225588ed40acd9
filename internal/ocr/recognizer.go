// Package ocr wraps text recognition behind a single capability interface so
// the extractor and everything downstream never depend on which backend
// produced the text.
package ocr

import "context"

// Recognizer turns an uploaded document image into raw text.
type Recognizer interface {
	RecognizeText(ctx context.Context, image []byte) (string, error)
}
