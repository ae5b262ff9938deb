package organisation

import (
	"github.com/fessit/financesuite/internal/organisation/repository"
	"github.com/fessit/financesuite/internal/organisation/service"
	"go.uber.org/fx"
)

var Module = fx.Module("organisation.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
