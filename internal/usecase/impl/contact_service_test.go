package impl

import (
	"context"
	"testing"

	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"
	"legalsite/internal/infra/fallback"
	mockRepo "legalsite/internal/mocks/repository"
	mockSvc "legalsite/internal/mocks/service"
	"legalsite/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestContactService(t *testing.T) (
	usecase.ContactUsecase,
	*mockRepo.MockContentRepository,
	*mockSvc.MockPhoneNormalizer,
	*mockSvc.MockQRCodeService,
) {
	contentRepo := mockRepo.NewMockContentRepository(t)
	phones := mockSvc.NewMockPhoneNormalizer(t)
	qrcodes := mockSvc.NewMockQRCodeService(t)
	content := NewContentService(contentRepo, fallback.NewStore(), testConfig("partial"), testLogger())

	return NewContactService(content, phones, qrcodes, testLogger()), contentRepo, phones, qrcodes
}

func TestContactService_ContactLink(t *testing.T) {
	srv, _, phones, _ := createTestContactService(t)

	member := entity.TeamMember{
		ID:     1,
		Social: entity.Social{WhatsApp: "0300 1234567", Email: "sara@example.com"},
	}
	phones.EXPECT().WhatsAppLink("0300 1234567").Return("https://wa.me/923001234567")

	assert.Equal(t, "https://wa.me/923001234567", srv.ContactLink(member, entity.ContactWhatsApp))
	assert.Equal(t, "mailto:sara@example.com", srv.ContactLink(member, entity.ContactEmail))
	assert.Empty(t, srv.ContactLink(member, entity.ContactPhone))
	assert.Empty(t, srv.ContactLink(member, entity.ContactChannel("fax")))
}

func TestContactService_ContactQR(t *testing.T) {
	ctx := context.Background()
	remoteTeam := []entity.TeamMember{
		{ID: 7, Name: "Sara", Social: entity.Social{Phone: "03001234567"}},
	}

	t.Run("renders member channel", func(t *testing.T) {
		srv, contentRepo, phones, qrcodes := createTestContactService(t)
		contentRepo.EXPECT().GetTeamMembers(ctx).Return(remoteTeam, nil)
		phones.EXPECT().TelLink("03001234567").Return("tel:+923001234567")
		qrcodes.EXPECT().GenerateContactQR("tel:+923001234567").Return([]byte("png"), nil)

		png, err := srv.ContactQR(ctx, 7, entity.ContactPhone)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("uses bundled team when remote fails", func(t *testing.T) {
		srv, contentRepo, phones, qrcodes := createTestContactService(t)
		contentRepo.EXPECT().GetTeamMembers(ctx).Return(nil, domainerrors.NewRemoteError(nil, "GET /api/team-members"))
		phones.EXPECT().WhatsAppLink(mock.Anything).Return("https://wa.me/923001234567")
		qrcodes.EXPECT().GenerateContactQR("https://wa.me/923001234567").Return([]byte("png"), nil)

		_, err := srv.ContactQR(ctx, 2, entity.ContactWhatsApp)
		require.NoError(t, err)
	})

	t.Run("missing channel", func(t *testing.T) {
		srv, contentRepo, _, _ := createTestContactService(t)
		contentRepo.EXPECT().GetTeamMembers(ctx).Return(remoteTeam, nil)

		_, err := srv.ContactQR(ctx, 7, entity.ContactEmail)
		assert.True(t, errors.Is(err, domainerrors.ErrContactChannelMissing))
	})

	t.Run("invalid number", func(t *testing.T) {
		srv, contentRepo, phones, _ := createTestContactService(t)
		contentRepo.EXPECT().GetTeamMembers(ctx).Return(remoteTeam, nil)
		phones.EXPECT().TelLink("03001234567").Return("")

		_, err := srv.ContactQR(ctx, 7, entity.ContactPhone)
		assert.True(t, errors.Is(err, domainerrors.ErrContactChannelMissing))
	})

	t.Run("unknown channel", func(t *testing.T) {
		srv, _, _, _ := createTestContactService(t)

		_, err := srv.ContactQR(ctx, 7, entity.ContactChannel("fax"))
		assert.True(t, errors.Is(err, domainerrors.ErrContactChannelMissing))
	})

	t.Run("unknown member", func(t *testing.T) {
		srv, contentRepo, _, _ := createTestContactService(t)
		contentRepo.EXPECT().GetTeamMembers(ctx).Return(remoteTeam, nil)

		_, err := srv.ContactQR(ctx, 99, entity.ContactPhone)
		assert.True(t, errors.Is(err, domainerrors.ErrTeamMemberNotFound))
	})

	t.Run("encoder failure", func(t *testing.T) {
		srv, contentRepo, phones, qrcodes := createTestContactService(t)
		contentRepo.EXPECT().GetTeamMembers(ctx).Return(remoteTeam, nil)
		phones.EXPECT().TelLink("03001234567").Return("tel:+923001234567")
		qrcodes.EXPECT().GenerateContactQR("tel:+923001234567").Return(nil, errors.New("content too long"))

		_, err := srv.ContactQR(ctx, 7, entity.ContactPhone)
		assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
	})
}
