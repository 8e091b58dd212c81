package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "legalsite/internal/delivery/context"
	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/domain/service"
	"legalsite/internal/errors"
	"legalsite/internal/infra/contact"
	"legalsite/internal/usecase"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	content usecase.ContentUsecase
	phones  service.PhoneNormalizer
	qrcodes service.QRCodeService
	logger  *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(
	content usecase.ContentUsecase,
	phones service.PhoneNormalizer,
	qrcodes service.QRCodeService,
	logger *slog.Logger,
) usecase.ContactUsecase {
	return &contactService{
		content: content,
		phones:  phones,
		qrcodes: qrcodes,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// ContactLink returns "" when the member lacks the channel or the number is invalid.
func (srv *contactService) ContactLink(member entity.TeamMember, channel entity.ContactChannel) string {
	value := member.Social.Channel(channel)
	if value == "" {
		return ""
	}

	switch channel {
	case entity.ContactWhatsApp:
		return srv.phones.WhatsAppLink(value)
	case entity.ContactPhone:
		return srv.phones.TelLink(value)
	case entity.ContactEmail:
		return contact.MailtoLink(value)
	default:
		return ""
	}
}

func (srv *contactService) ContactQR(ctx context.Context, memberID int, channel entity.ContactChannel) ([]byte, error) {
	logger := srv.log(ctx).With(slog.Int("member_id", memberID), slog.String("channel", string(channel)))

	if !channel.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrContactChannelMissing.WithDetails(string(channel)))
	}

	team := srv.content.Team(ctx)

	var member *entity.TeamMember
	for i := range team.Data {
		if team.Data[i].ID == memberID {
			member = &team.Data[i]
			break
		}
	}
	if member == nil {
		return nil, errors.WithStack(domainerrors.ErrTeamMemberNotFound.WithDetails(strconv.Itoa(memberID)))
	}

	link := srv.ContactLink(*member, channel)
	if link == "" {
		logger.Debug("contact channel unavailable")

		return nil, errors.WithStack(domainerrors.ErrContactChannelMissing.WithDetails(string(channel)))
	}

	png, err := srv.qrcodes.GenerateContactQR(link)
	if err != nil {
		logger.Error("Failed to generate contact QR code", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}
