package compliance

import (
	"github.com/fessit/financesuite/internal/compliance/repository"
	"github.com/fessit/financesuite/internal/compliance/service"
	"go.uber.org/fx"
)

var Module = fx.Module("compliance.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
