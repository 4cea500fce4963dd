package deps

import (
	"time"

	"github.com/mesh-intelligence/scratchbook/internal/images"
	"github.com/mesh-intelligence/scratchbook/internal/logger"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Catalog   types.Catalog // attached catalog the handlers read from
	Images    *images.Store // scans referenced by items
	PageSize  int           // grid page size for /api/items
	TimeNow   func() time.Time
}
