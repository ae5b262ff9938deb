package customer

import (
	"github.com/fessit/financesuite/internal/customer/repository"
	"github.com/fessit/financesuite/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
