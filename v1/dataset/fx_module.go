package dataset

import (
	"go.uber.org/fx"

	"github.com/vecsink/vecsink/v1/logger"
)

// FXModule integrates the dataset loader into an fx application. It
// provides the object store as the Getter implementation plus the Loader
// built on top of it.
//
// Dependencies: a dataset.Config must be available in the container; a
// *logger.Logger is picked up when present.
//
// Usage:
//
//	app := fx.New(
//	    dataset.FXModule,
//	    fx.Provide(func() dataset.Config { ... }),
//	)
var FXModule = fx.Module("dataset",
	fx.Provide(
		NewObjectStore,
		func(s *ObjectStore) Getter { return s },
		newLoaderFromParams,
	),
)

// LoaderParams groups the loader dependencies.
type LoaderParams struct {
	fx.In

	Getter Getter
	Logger *logger.Logger `optional:"true"`
}

func newLoaderFromParams(p LoaderParams) *Loader {
	return NewLoader(p.Getter, p.Logger)
}
