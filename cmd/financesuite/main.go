package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/fessit/financesuite/internal/config"
	"github.com/fessit/financesuite/internal/logger"
	"github.com/fessit/financesuite/internal/migration"
	"github.com/fessit/financesuite/internal/server"
	"github.com/fessit/financesuite/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)

	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
