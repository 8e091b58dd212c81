package usecase

import (
	"context"

	"legalsite/internal/domain/entity"
)

// ContactUsecase builds contact affordances for team members.
type ContactUsecase interface {
	// ContactLink returns the wa.me, tel: or mailto: link for a member's channel.
	ContactLink(member entity.TeamMember, channel entity.ContactChannel) string

	// ContactQR renders the channel link of team member memberID as a PNG QR code.
	ContactQR(ctx context.Context, memberID int, channel entity.ContactChannel) ([]byte, error)
}
