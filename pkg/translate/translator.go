// Package translate provides machine translation for news text: a free
// Google endpoint client, an optional OpenAI fallback and a memoizing
// cache in front of them.
package translate

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-pkgz/lgr"

	"newsmap/pkg/domain"
)

// Translator translates text into the target language
type Translator interface {
	Translate(ctx context.Context, text string, target domain.Lang) (string, error)
}

// Fallback chains two translators: the secondary is consulted only when the
// primary fails or returns nothing
type Fallback struct {
	Primary   Translator
	Secondary Translator
}

// Translate tries the primary translator first
func (f *Fallback) Translate(ctx context.Context, text string, target domain.Lang) (string, error) {
	result, err := f.Primary.Translate(ctx, text, target)
	if err == nil && result != "" {
		return result, nil
	}
	if err != nil {
		lgr.Printf("[WARN] primary translator failed, trying fallback: %v", err)
	}
	return f.Secondary.Translate(ctx, text, target)
}

// ProxyLink rewrites an article URL through the Google translate proxy so
// the reader lands on a translated page
func ProxyLink(rawURL string, target domain.Lang) string {
	return fmt.Sprintf("https://translate.google.com/translate?sl=auto&tl=%s&u=%s", target, url.QueryEscape(rawURL))
}
