// Package contact formats team member contact channels into links.
package contact

import (
	"net/url"
	"strings"

	"legalsite/config"
	"legalsite/internal/domain/service"

	"github.com/nyaruka/phonenumbers"
)

type phoneNormalizer struct {
	region string
}

// NewPhoneNormalizer parses numbers without a country code as region-local.
func NewPhoneNormalizer(region string) service.PhoneNormalizer {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = "PK"
	}

	return &phoneNormalizer{region: region}
}

// NewPhoneNormalizerFromConfig uses contact.defaultRegion.
func NewPhoneNormalizerFromConfig(cfg *config.Config) service.PhoneNormalizer {
	if cfg.Contact == nil {
		return NewPhoneNormalizer("")
	}

	return NewPhoneNormalizer(cfg.Contact.DefaultRegion)
}

func (n *phoneNormalizer) E164(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	num, err := phonenumbers.Parse(raw, n.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return ""
	}

	return phonenumbers.Format(num, phonenumbers.E164)
}

// WhatsAppLink returns https://wa.me/<digits> as wa.me expects no plus sign.
func (n *phoneNormalizer) WhatsAppLink(raw string) string {
	e164 := n.E164(raw)
	if e164 == "" {
		return ""
	}

	return "https://wa.me/" + strings.TrimPrefix(e164, "+")
}

func (n *phoneNormalizer) TelLink(raw string) string {
	e164 := n.E164(raw)
	if e164 == "" {
		return ""
	}

	return "tel:" + e164
}

// MailtoLink returns a mailto: link, or "" for a blank address.
func MailtoLink(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	return (&url.URL{Scheme: "mailto", Opaque: email}).String()
}
