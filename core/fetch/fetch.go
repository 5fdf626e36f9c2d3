package fetch

import (
	"context"

	"go.uber.org/zap"
)

// Page is a single page of a paginated collection.
type Page[T any] struct {
	// Items are the records on this page.
	Items []T
	// HasNext indicates whether another page follows.
	HasNext bool
}

// PageFunc retrieves one page of a collection. Pages are numbered from 1.
// Implementations must be stateless: calling page n must not depend on
// having called page n-1.
type PageFunc[T any] func(ctx context.Context, page int) (Page[T], error)

// All walks every page of a collection sequentially and returns the
// flattened items. Page n+1 is requested only after page n has resolved.
//
// A failed page fetch does not abort the walk's caller: the error is
// logged and the items gathered so far are returned, which degrades to an
// empty result when the first page fails. Callers that need hard failure
// semantics should not route through this helper.
func All[T any](ctx context.Context, l *zap.Logger, fn PageFunc[T]) []T {
	var items []T
	for page := 1; ; page++ {
		p, err := fn(ctx, page)
		if err != nil {
			l.Error("page fetch failed, returning partial results",
				zap.Int("page", page),
				zap.Int("items_so_far", len(items)),
				zap.Error(err),
			)
			return items
		}
		items = append(items, p.Items...)
		if !p.HasNext {
			return items
		}
	}
}
