package entity

// ContactChannel names one of a team member's optional contact affordances.
type ContactChannel string

const (
	ContactWhatsApp ContactChannel = "whatsapp"
	ContactPhone    ContactChannel = "phone"
	ContactEmail    ContactChannel = "email"
)

// IsValid checks if the ContactChannel is a known value.
func (c ContactChannel) IsValid() bool {
	switch c {
	case ContactWhatsApp, ContactPhone, ContactEmail:
		return true
	default:
		return false
	}
}

// Social holds a team member's contact channels. Each one is optional.
type Social struct {
	WhatsApp string `json:"whatsapp,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Channel returns the value of a channel, or "" when absent.
func (s Social) Channel(c ContactChannel) string {
	switch c {
	case ContactWhatsApp:
		return s.WhatsApp
	case ContactPhone:
		return s.Phone
	case ContactEmail:
		return s.Email
	default:
		return ""
	}
}

// TeamMember is a lawyer or staff member shown on the site.
type TeamMember struct {
	ID     int         `json:"id"`
	Name   string      `json:"name"`
	Role   string      `json:"role"`
	Image  *MediaAsset `json:"image,omitempty"`
	Social Social      `json:"social"`
}

// Clone returns a deep copy of the member.
func (m TeamMember) Clone() TeamMember {
	m.Image = m.Image.Clone()

	return m
}
