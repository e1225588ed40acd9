package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Characters the recognizer is allowed to emit. Restricting the set improves
// accuracy on scanned loan paperwork.
const defaultWhitelist = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz .:$,%"

// TesseractRecognizer runs the local Tesseract engine.
type TesseractRecognizer struct {
	language  string
	whitelist string
}

// NewTesseractRecognizer creates the default local backend.
func NewTesseractRecognizer(language string) *TesseractRecognizer {
	if language == "" {
		language = "eng"
	}
	return &TesseractRecognizer{
		language:  language,
		whitelist: defaultWhitelist,
	}
}

// RecognizeText runs recognition on a goroutine so a slow engine call can be
// abandoned when the context expires. A fresh client is created per call;
// gosseract clients are not safe for concurrent use.
func (r *TesseractRecognizer) RecognizeText(ctx context.Context, image []byte) (string, error) {
	type outcome struct {
		text string
		err  error
	}
	ch := make(chan outcome, 1)

	go func() {
		client := gosseract.NewClient()
		defer client.Close()

		if err := client.SetLanguage(r.language); err != nil {
			ch <- outcome{err: fmt.Errorf("set language: %w", err)}
			return
		}
		if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
			ch <- outcome{err: fmt.Errorf("set page seg mode: %w", err)}
			return
		}
		if err := client.SetWhitelist(r.whitelist); err != nil {
			ch <- outcome{err: fmt.Errorf("set whitelist: %w", err)}
			return
		}
		if err := client.SetImageFromBytes(image); err != nil {
			ch <- outcome{err: fmt.Errorf("set image: %w", err)}
			return
		}

		text, err := client.Text()
		if err != nil {
			ch <- outcome{err: fmt.Errorf("recognize: %w", err)}
			return
		}
		ch <- outcome{text: text}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case out := <-ch:
		return out.text, out.err
	}
}
