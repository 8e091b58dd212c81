package strapi

import (
	"bytes"
	"encoding/json"
	"regexp"
	"time"

	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	//nolint:gochecknoglobals
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	//nolint:gochecknoglobals
	payloadValidator = newPayloadValidator()

	nullLiteral = []byte("null")
)

func newPayloadValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	return v
}

func isNull(b []byte) bool {
	b = bytes.TrimSpace(b)

	return len(b) == 0 || bytes.Equal(b, nullLiteral)
}

// flatten merges a v4 {id, attributes:{...}} item into one flat object.
// Flat (v5) items are returned unchanged.
func flatten(raw json.RawMessage) (json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errors.Wrap(err, "item is not an object")
	}
	if obj == nil {
		return nil, errors.New("item is null")
	}

	attrs, ok := obj["attributes"]
	if !ok {
		return raw, nil
	}

	var inner map[string]json.RawMessage
	if err := json.Unmarshal(attrs, &inner); err != nil || inner == nil {
		return nil, errors.New("attributes is not an object")
	}
	for _, key := range []string{"id", "documentId"} {
		if v, ok := obj[key]; ok {
			inner[key] = v
		}
	}

	out, err := json.Marshal(inner)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return out, nil
}

// decodeList decodes a JSON array of items in either shape into T values.
func decodeList[T any](data json.RawMessage) ([]T, error) {
	if isNull(data) {
		return []T{}, nil
	}

	var rawItems []json.RawMessage
	if err := json.Unmarshal(data, &rawItems); err != nil {
		return nil, errors.Wrap(err, "data is not an array")
	}

	items := make([]T, 0, len(rawItems))
	for i, raw := range rawItems {
		flat, err := flatten(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}

		var item T
		if err := json.Unmarshal(flat, &item); err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
		items = append(items, item)
	}

	return items, nil
}

// decodeItems decodes and validates every item of an envelope's data array.
// Any malformed item rejects the whole payload.
func decodeItems[T any](env *Envelope, path string) ([]T, error) {
	items, err := decodeList[T](env.Data)
	if err != nil {
		return nil, domainerrors.NewRemoteError(err, "malformed payload from "+path)
	}

	for i := range items {
		if err := payloadValidator.Struct(&items[i]); err != nil {
			return nil, domainerrors.NewRemoteError(errors.Wrapf(err, "item %d", i), "malformed payload from "+path)
		}
	}

	return items, nil
}

// relationList accepts a bare array (components, v5 relations) or a
// {data: [...]} wrapper (v4 relations).
type relationList[T any] []T

func (l *relationList[T]) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		*l = nil

		return nil
	}

	b = bytes.TrimSpace(b)
	if b[0] == '{' {
		var wrapper struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(b, &wrapper); err != nil {
			return errors.WithStack(err)
		}
		b = wrapper.Data
	}

	items, err := decodeList[T](b)
	if err != nil {
		return err
	}
	*l = items

	return nil
}

type mediaDTO struct {
	URL             string `json:"url"`
	AlternativeText string `json:"alternativeText"`
	Mime            string `json:"mime"`
}

// mediaField accepts a flat media object, a {data:{attributes}} wrapper, a
// multi-media array (first entry wins) or a bare URL string.
type mediaField struct {
	asset *mediaDTO
}

func (m *mediaField) UnmarshalJSON(b []byte) error {
	m.asset = nil
	if isNull(b) {
		return nil
	}

	b = bytes.TrimSpace(b)
	switch b[0] {
	case '"':
		var url string
		if err := json.Unmarshal(b, &url); err != nil {
			return errors.WithStack(err)
		}
		if url != "" {
			m.asset = &mediaDTO{URL: url}
		}

		return nil
	case '[':
		var arr []json.RawMessage
		if err := json.Unmarshal(b, &arr); err != nil {
			return errors.WithStack(err)
		}
		if len(arr) == 0 {
			return nil
		}

		return m.UnmarshalJSON(arr[0])
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return errors.Wrap(err, "media is not an object")
	}
	if data, ok := obj["data"]; ok {
		return m.UnmarshalJSON(data)
	}

	flat, err := flatten(b)
	if err != nil {
		return err
	}

	var dto mediaDTO
	if err := json.Unmarshal(flat, &dto); err != nil {
		return errors.WithStack(err)
	}
	if dto.URL != "" {
		m.asset = &dto
	}

	return nil
}

func (m mediaField) toEntity(baseURL string) *entity.MediaAsset {
	if m.asset == nil {
		return nil
	}

	url, ok := ResolveMediaURL(baseURL, &entity.MediaAsset{URL: m.asset.URL})
	if !ok {
		return nil
	}

	return &entity.MediaAsset{
		URL:             url,
		AlternativeText: m.asset.AlternativeText,
		Mime:            m.asset.Mime,
	}
}

type heroSlideDTO struct {
	ID            int        `json:"id" validate:"required"`
	TitleEN       string     `json:"title_en" validate:"required"`
	TitleAR       string     `json:"title_ar"`
	DescriptionEN string     `json:"description_en"`
	DescriptionAR string     `json:"description_ar"`
	MediaType     string     `json:"media_type" validate:"omitempty,oneof=image video"`
	VideoURL      string     `json:"video_url" validate:"required_if=MediaType video"`
	Image         mediaField `json:"image"`
}

func (d heroSlideDTO) toEntity(baseURL string) entity.HeroSlide {
	kind := entity.SlideKind(d.MediaType)
	if !kind.IsValid() {
		kind = entity.SlideKindImage
	}

	videoURL, _ := ResolveMediaURL(baseURL, &entity.MediaAsset{URL: d.VideoURL})

	return entity.HeroSlide{
		ID:          d.ID,
		Title:       entity.NewLocalizedText(d.TitleEN, d.TitleAR),
		Description: entity.NewLocalizedText(d.DescriptionEN, d.DescriptionAR),
		Image:       d.Image.toEntity(baseURL),
		VideoURL:    videoURL,
		Kind:        kind,
	}
}

type pageDTO struct {
	ID         int                        `json:"id"`
	Slug       string                     `json:"slug"`
	HeroSlides relationList[heroSlideDTO] `json:"hero_slides" validate:"dive"`
}

type featureDTO struct {
	TitleEN       string `json:"title_en" validate:"required"`
	TitleAR       string `json:"title_ar"`
	DescriptionEN string `json:"description_en"`
	DescriptionAR string `json:"description_ar"`
}

type serviceDTO struct {
	ID            int                      `json:"id" validate:"required"`
	Slug          string                   `json:"slug" validate:"required,slug"`
	TitleEN       string                   `json:"title_en" validate:"required"`
	TitleAR       string                   `json:"title_ar"`
	DescriptionEN string                   `json:"description_en"`
	DescriptionAR string                   `json:"description_ar"`
	ApproachEN    string                   `json:"approach_en"`
	ApproachAR    string                   `json:"approach_ar"`
	Image         mediaField               `json:"image"`
	ApproachImage mediaField               `json:"approach_image"`
	Features      relationList[featureDTO] `json:"features" validate:"dive"`
}

func (d serviceDTO) toEntity(baseURL string) entity.Service {
	features := make([]entity.Feature, 0, len(d.Features))
	for _, f := range d.Features {
		features = append(features, entity.Feature{
			Title:       entity.NewLocalizedText(f.TitleEN, f.TitleAR),
			Description: entity.NewLocalizedText(f.DescriptionEN, f.DescriptionAR),
		})
	}

	return entity.Service{
		ID:            d.ID,
		Slug:          d.Slug,
		Title:         entity.NewLocalizedText(d.TitleEN, d.TitleAR),
		Description:   entity.NewLocalizedText(d.DescriptionEN, d.DescriptionAR),
		Approach:      entity.NewLocalizedText(d.ApproachEN, d.ApproachAR),
		Image:         d.Image.toEntity(baseURL),
		ApproachImage: d.ApproachImage.toEntity(baseURL),
		Features:      features,
	}
}

type serviceNavDTO struct {
	Slug    string `json:"slug" validate:"required,slug"`
	TitleEN string `json:"title_en" validate:"required"`
	TitleAR string `json:"title_ar"`
}

func (d serviceNavDTO) toEntity() entity.ServiceLink {
	return entity.ServiceLink{
		Slug:  d.Slug,
		Title: entity.NewLocalizedText(d.TitleEN, d.TitleAR),
	}
}

type socialDTO struct {
	WhatsApp string `json:"whatsapp"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type teamMemberDTO struct {
	ID     int        `json:"id" validate:"required"`
	Name   string     `json:"name" validate:"required"`
	Role   string     `json:"role"`
	Image  mediaField `json:"image"`
	Social *socialDTO `json:"social"`
}

func (d teamMemberDTO) toEntity(baseURL string) entity.TeamMember {
	member := entity.TeamMember{
		ID:    d.ID,
		Name:  d.Name,
		Role:  d.Role,
		Image: d.Image.toEntity(baseURL),
	}
	if d.Social != nil {
		member.Social = entity.Social{
			WhatsApp: d.Social.WhatsApp,
			Phone:    d.Social.Phone,
			Email:    d.Social.Email,
		}
	}

	return member
}

type clientDTO struct {
	ID            int        `json:"id" validate:"required"`
	NameEN        string     `json:"name_en" validate:"required"`
	NameAR        string     `json:"name_ar"`
	PositionEN    string     `json:"position_en"`
	PositionAR    string     `json:"position_ar"`
	TestimonialEN string     `json:"testimonial_en" validate:"required"`
	TestimonialAR string     `json:"testimonial_ar"`
	Logo          mediaField `json:"logo"`
	Image         mediaField `json:"image"`
}

func (d clientDTO) toEntity(baseURL string) entity.ClientTestimonial {
	image := d.Logo.toEntity(baseURL)
	if image == nil {
		image = d.Image.toEntity(baseURL)
	}

	return entity.ClientTestimonial{
		ID:          d.ID,
		Name:        entity.NewLocalizedText(d.NameEN, d.NameAR),
		Position:    entity.NewLocalizedText(d.PositionEN, d.PositionAR),
		Image:       image,
		Testimonial: entity.NewLocalizedText(d.TestimonialEN, d.TestimonialAR),
	}
}

type blogDTO struct {
	ID          int        `json:"id" validate:"required"`
	Slug        string     `json:"slug" validate:"required,slug"`
	TitleEN     string     `json:"title_en" validate:"required"`
	TitleAR     string     `json:"title_ar"`
	ExcerptEN   string     `json:"excerpt_en"`
	ExcerptAR   string     `json:"excerpt_ar"`
	ContentEN   string     `json:"content_en"`
	ContentAR   string     `json:"content_ar"`
	CoverImage  mediaField `json:"cover_image"`
	PublishedAt time.Time  `json:"publishedAt"`
}

func (d blogDTO) toEntity(baseURL string) entity.BlogPost {
	return entity.BlogPost{
		ID:          d.ID,
		Slug:        d.Slug,
		Title:       entity.NewLocalizedText(d.TitleEN, d.TitleAR),
		Excerpt:     entity.NewLocalizedText(d.ExcerptEN, d.ExcerptAR),
		Content:     entity.NewLocalizedText(d.ContentEN, d.ContentAR),
		CoverImage:  d.CoverImage.toEntity(baseURL),
		PublishedAt: d.PublishedAt,
	}
}

type subscriberDTO struct {
	ID        int       `json:"id"`
	Email     string    `json:"email" validate:"required,email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (d subscriberDTO) toEntity() *entity.Subscriber {
	return &entity.Subscriber{
		ID:           d.ID,
		Email:        d.Email,
		SubscribedAt: d.CreatedAt,
	}
}
