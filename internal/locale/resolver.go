package locale

import (
	"sync"

	"legalsite/internal/domain/entity"
)

// Navigator moves the presentation to another path.
type Navigator interface {
	Navigate(path string)
}

// Document receives the root lang and dir attributes.
type Document interface {
	SetLang(lang string)
	SetDir(dir string)
}

// Resolver owns the live locale of an interactive session.
//
// Until Mount is called it reports the routed language only, so the first
// render matches what a server render produced for the same route. After
// Mount it tracks toggles and keeps the Document in sync.
type Resolver struct {
	mu      sync.RWMutex
	routed  entity.Language
	live    entity.Language
	mounted bool

	nav Navigator
	doc Document
}

// NewResolver creates a resolver for the language taken from the route.
// Invalid languages resolve to English.
func NewResolver(routed entity.Language, nav Navigator, doc Document) *Resolver {
	if !routed.IsValid() {
		routed = entity.LanguageEnglish
	}

	return &Resolver{
		routed: routed,
		live:   routed,
		nav:    nav,
		doc:    doc,
	}
}

// Context returns the routed context before mount and the live one after.
func (r *Resolver) Context() Context {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.mounted {
		return NewContext(r.routed)
	}

	return NewContext(r.live)
}

// Mounted reports whether Mount has run.
func (r *Resolver) Mounted() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.mounted
}

// Mount switches to live state and applies lang and dir to the document.
// Calling it again is a no-op.
func (r *Resolver) Mount() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mounted {
		return
	}
	r.mounted = true
	r.apply(r.live)
}

// ToggleLanguage switches to the other language and navigates to the same
// page under it. Before mount it does nothing and returns "".
func (r *Resolver) ToggleLanguage(currentPath string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.mounted {
		return ""
	}

	r.live = r.live.Other()
	target := SwitchPath(currentPath, r.live)

	if r.nav != nil {
		r.nav.Navigate(target)
	}
	r.apply(r.live)

	return target
}

func (r *Resolver) apply(lang entity.Language) {
	if r.doc == nil {
		return
	}
	r.doc.SetLang(lang.String())
	r.doc.SetDir(lang.Direction())
}
