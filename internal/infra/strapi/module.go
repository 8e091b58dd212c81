package strapi

import "go.uber.org/fx"

// Module provides the content service client and its repositories
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClientFromConfig,
		NewContentRepository,
		NewSearchRepository,
		NewSubscriberRepository,
	),
)
