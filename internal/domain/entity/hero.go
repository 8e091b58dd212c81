package entity

// SlideKind distinguishes image slides from video slides.
type SlideKind string

const (
	SlideKindImage SlideKind = "image"
	SlideKindVideo SlideKind = "video"
)

// IsValid checks if the SlideKind is a known value.
func (k SlideKind) IsValid() bool {
	return k == SlideKindImage || k == SlideKindVideo
}

// HeroSlide is one entry of the home page hero carousel.
type HeroSlide struct {
	ID          int           `json:"id"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Image       *MediaAsset   `json:"image,omitempty"`
	VideoURL    string        `json:"videoUrl,omitempty"`
	Kind        SlideKind     `json:"kind"`
}

// Clone returns a deep copy of the slide.
func (s HeroSlide) Clone() HeroSlide {
	s.Image = s.Image.Clone()

	return s
}
