package expense

import (
	"github.com/fessit/financesuite/internal/expense/repository"
	"github.com/fessit/financesuite/internal/expense/service"
	"go.uber.org/fx"
)

var Module = fx.Module("expense.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
