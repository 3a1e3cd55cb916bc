// Package acquisition defines the boundary to raw odds sources. The core
// pipeline only sees EventOddsRows; whether a source is a JSON API or a
// browser-rendered page is the source's own business.
package acquisition

import (
	"context"

	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

// Source fetches the current odds rows for one league. A source that cannot
// retrieve data returns an error; the pipeline treats that as an empty batch
// for this cycle, never as a fatal condition.
type Source interface {
	Name() string
	Fetch(ctx context.Context, league enums.League) ([]models.EventOddsRow, error)
}
