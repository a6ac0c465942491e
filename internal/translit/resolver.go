package translit

import (
	"context"

	svcerr "github.com/indictext/lipi/internal/errors"
	"github.com/indictext/lipi/internal/script"
)

// Resolver corrects ambiguous source-script hints before delegating to the
// transliteration backend. A caller's "ISO" hint often just means "I don't
// know": the text may actually be in a native script. Detection only ever
// upgrades the sentinel hint; an explicit native-script hint is passed
// through untouched even when detection disagrees.
type Resolver struct {
	backend    Backend
	classifier *script.Classifier
}

// NewResolver builds a resolver. backend may be nil when no
// transliteration service is configured; Resolve then fails with
// TRANSLIT_UNAVAILABLE.
func NewResolver(backend Backend, classifier *script.Classifier) *Resolver {
	return &Resolver{backend: backend, classifier: classifier}
}

// Resolve transliterates text from srcHint to tgtScript, upgrading an
// "ISO" hint to the detected script first. The backend's output is
// returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, srcHint, tgtScript, text string) (string, error) {
	if r.backend == nil {
		return "", svcerr.NewTranslitUnavailable()
	}

	if srcHint == script.ISO {
		if det := r.classifier.Detect(text); det.Script != script.ISO {
			srcHint = det.Script
		}
	}

	out, err := r.backend.Transliterate(ctx, srcHint, tgtScript, text)
	if err != nil {
		return "", svcerr.NewTranslitFailed(err)
	}
	return out, nil
}
