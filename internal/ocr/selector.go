/**
 * Smart OCR language selection
 *
 * Strategy:
 * 1. Run OCR with the default language to get initial text
 * 2. Detect the script of the initial extraction
 * 3. If the detected script suggests a different Tesseract language,
 *    run OCR again with that language and keep the better result
 *
 * Only the first pass is fatal; the retry is best-effort and never turns a
 * successful first pass into a failure.
 */

package ocr

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	svcerr "github.com/indictext/lipi/internal/errors"
	"github.com/indictext/lipi/internal/script"
)

// Attempt is the outcome of one Extract call.
type Attempt struct {
	// Text is the winning extraction, whitespace-trimmed.
	Text string
	// UsedLanguage is the Tesseract language code of the winning pass.
	UsedLanguage string
	// DetectedScript is the script classified on the first-pass text. It
	// drives the retry and is reported as-is even when the second pass wins.
	DetectedScript string
	// Breakdown and Confidence come from a fresh classification of the
	// final text, for reporting to the caller.
	Breakdown  map[string]int
	Confidence float64
}

// Selector runs the two-pass OCR strategy. Construct with NewSelector;
// all fields are read-only after that, so one Selector serves concurrent
// requests.
type Selector struct {
	engine      Engine
	classifier  *script.Classifier
	languages   map[string]string
	defaultLang string
	log         zerolog.Logger
}

// NewSelector builds a selector. engine may be nil when no OCR backend is
// configured; Extract then fails with OCR_UNAVAILABLE. languages maps
// script identifiers to Tesseract language codes.
func NewSelector(engine Engine, classifier *script.Classifier, languages map[string]string, defaultLang string, log zerolog.Logger) *Selector {
	return &Selector{
		engine:      engine,
		classifier:  classifier,
		languages:   languages,
		defaultLang: defaultLang,
		log:         log,
	}
}

// Extract runs OCR on image, retrying once with a script-suggested
// language when the default pass looks like it used the wrong model.
func (s *Selector) Extract(ctx context.Context, image []byte) (Attempt, error) {
	if s.engine == nil {
		return Attempt{}, svcerr.NewOCRUnavailable()
	}

	text0, err := s.engine.ImageToText(ctx, image, s.defaultLang)
	if err != nil {
		return Attempt{}, svcerr.NewOCREngine(err)
	}
	text0 = strings.TrimSpace(text0)

	detected := s.classifier.Detect(text0)
	suggested := s.languages[detected.Script]
	if suggested == "" {
		suggested = s.defaultLang
	}

	finalText := text0
	usedLang := s.defaultLang

	if suggested != s.defaultLang {
		s.log.Debug().
			Str("detected_script", detected.Script).
			Str("suggested_lang", suggested).
			Msg("retrying OCR with suggested language")

		text1, err := s.engine.ImageToText(ctx, image, suggested)
		if err != nil {
			// Best-effort retry: keep the first-pass result.
			s.log.Warn().Err(err).Str("lang", suggested).Msg("second OCR pass failed, keeping first pass")
		} else {
			text1 = strings.TrimSpace(text1)
			switch {
			case utf8.RuneCountInString(text1) > utf8.RuneCountInString(text0):
				finalText, usedLang = text1, suggested
			case text1 != "" && text0 == "":
				finalText, usedLang = text1, suggested
			}
		}
	}

	report := s.classifier.Detect(finalText)

	return Attempt{
		Text:           finalText,
		UsedLanguage:   usedLang,
		DetectedScript: detected.Script,
		Breakdown:      report.Breakdown,
		Confidence:     report.Confidence,
	}, nil
}
