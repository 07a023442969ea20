// seed carga catálogos (categorías, categorías de tarjeta y bancos) desde CSV usando los casos de
// uso de importación, por lo que puede re-ejecutarse sin duplicar filas.
//
// Uso:
//
//	go run ./cmd/seed categories --organization <uuid> categorias.csv
//	go run ./cmd/seed credit-card-categories tarjetas.csv
//	go run ./cmd/seed banks --organization <uuid> --latin1 bancos.csv
package main

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/jhoicas/Finanzas-api/internal/factory"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Finanzas-api/pkg/config"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

var (
	version = "dev"
	cli     struct {
		Categories           CategoriesCmd           `cmd:"" help:"Importa categorías de una organización (name,type[,color,icon])"`
		CreditCardCategories CreditCardCategoriesCmd `cmd:"" name:"credit-card-categories" help:"Importa la tabla global de categorías de tarjeta (name[,code])"`
		Banks                BanksCmd                `cmd:"" help:"Importa bancos de una organización (name[,code[,type]])"`
		Latin1               bool                    `name:"latin1" help:"El CSV viene en ISO-8859-1."`
		Migrate              bool                    `help:"Aplica migraciones antes de importar."`
		Version              kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	kctx := kong.Parse(&cli,
		kong.Name("seed"),
		kong.Vars{"version": version},
		kong.BindTo(ctx, (*context.Context)(nil)))

	cfg, err := config.Load()
	kctx.FatalIfErrorf(err)
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	pool, err := postgres.NewPool(ctx, cfg.DB)
	kctx.FatalIfErrorf(err)
	defer pool.Close()
	if cli.Migrate {
		kctx.FatalIfErrorf(postgres.Migrate(pool))
	}

	f := factory.New(factory.Deps{
		Store: postgres.NewStore(pool),
		Tx:    postgres.NewTxRunner(pool),
	})
	err = kctx.Run(&Globals{Factory: f, Latin1: cli.Latin1, Log: log})
	if err != nil {
		err = fmt.Errorf("seed %s: %w", kctx.Command(), err)
	}
	kctx.FatalIfErrorf(err)
}
