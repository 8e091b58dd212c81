package service

// PhoneNormalizer formats free-form phone numbers for contact links
type PhoneNormalizer interface {
	// E164 returns the number in E.164 form, or "" when it cannot be parsed as valid
	E164(raw string) string

	// WhatsAppLink returns a https://wa.me link for the number, or "" when invalid
	WhatsAppLink(raw string) string

	// TelLink returns a tel: link for the number, or "" when invalid
	TelLink(raw string) string
}
