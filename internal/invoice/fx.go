package invoice

import (
	"github.com/fessit/financesuite/internal/invoice/repository"
	"github.com/fessit/financesuite/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
