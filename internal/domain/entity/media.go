package entity

// MediaAsset references an image or video resource. URL is absolute once it
// has passed through the content client; fallback assets carry site-local paths.
type MediaAsset struct {
	URL             string `json:"url"`
	AlternativeText string `json:"alternativeText,omitempty"`
	Mime            string `json:"mime,omitempty"`
}

// NewMediaAsset returns an asset for url, or nil when url is empty.
func NewMediaAsset(url string) *MediaAsset {
	if url == "" {
		return nil
	}

	return &MediaAsset{URL: url}
}

// URLOr returns the asset URL, or placeholder when the asset is unusable.
func (m *MediaAsset) URLOr(placeholder string) string {
	if m == nil || m.URL == "" {
		return placeholder
	}

	return m.URL
}

// Clone returns a copy of the asset.
func (m *MediaAsset) Clone() *MediaAsset {
	if m == nil {
		return nil
	}
	c := *m

	return &c
}
