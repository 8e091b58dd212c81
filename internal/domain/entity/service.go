package entity

// Feature is a sub-offering owned by a Service.
type Feature struct {
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"` // rich markup
}

// Service is a legal practice area offered by the firm.
type Service struct {
	ID            int           `json:"id"`
	Slug          string        `json:"slug"`
	Title         LocalizedText `json:"title"`
	Description   LocalizedText `json:"description"` // rich markup
	Approach      LocalizedText `json:"approach"`    // rich markup
	Image         *MediaAsset   `json:"image,omitempty"`
	ApproachImage *MediaAsset   `json:"approachImage,omitempty"`
	Features      []Feature     `json:"features"`
}

// Clone returns a deep copy of the service.
func (s Service) Clone() Service {
	s.Image = s.Image.Clone()
	s.ApproachImage = s.ApproachImage.Clone()
	if s.Features != nil {
		features := make([]Feature, len(s.Features))
		copy(features, s.Features)
		s.Features = features
	}

	return s
}

// Link returns the header navigation entry for the service.
func (s Service) Link() ServiceLink {
	return ServiceLink{Slug: s.Slug, Title: s.Title}
}

// ServiceLink is the lightweight shape used by the header navigation.
type ServiceLink struct {
	Slug  string        `json:"slug"`
	Title LocalizedText `json:"title"`
}
