package entity

// ClientTestimonial is a quote from a client shown in the clients carousel.
type ClientTestimonial struct {
	ID          int           `json:"id"`
	Name        LocalizedText `json:"name"`
	Position    LocalizedText `json:"position"`
	Image       *MediaAsset   `json:"image,omitempty"`
	Testimonial LocalizedText `json:"testimonial"`
}

// Clone returns a deep copy of the testimonial.
func (t ClientTestimonial) Clone() ClientTestimonial {
	t.Image = t.Image.Clone()

	return t
}
