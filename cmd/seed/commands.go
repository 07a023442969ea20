package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/factory"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

// Globals dependencias compartidas por los subcomandos.
type Globals struct {
	Factory *factory.Factory
	Latin1  bool
	Log     *logger.Logger
}

// CategoriesCmd importa categorías de ingreso o gasto.
type CategoriesCmd struct {
	Organization string `required:"" env:"SEED_ORGANIZATION_ID" help:"ID de la organización destino"`
	File         string `arg:"" type:"existingfile" help:"Archivo CSV"`
}

func (c *CategoriesCmd) Run(ctx context.Context, g *Globals) error {
	rows, err := readFile(c.File, g.Latin1)
	if err != nil {
		return err
	}
	in, err := categoryItems(rows)
	if err != nil {
		return err
	}
	out, err := g.Factory.MakeImportCategories().Execute(ctx, c.Organization, in)
	if err != nil {
		return err
	}
	g.Log.Info().Int("leidas", len(in.Items)).Int("insertadas", out.Count).Msg("categorías importadas")
	return nil
}

// CreditCardCategoriesCmd importa la tabla global de categorías de tarjeta.
type CreditCardCategoriesCmd struct {
	File string `arg:"" type:"existingfile" help:"Archivo CSV"`
}

func (c *CreditCardCategoriesCmd) Run(ctx context.Context, g *Globals) error {
	rows, err := readFile(c.File, g.Latin1)
	if err != nil {
		return err
	}
	in := creditCardItems(rows)
	out, err := g.Factory.MakeImportCategoryCreditCards().Execute(ctx, in)
	if err != nil {
		return err
	}
	g.Log.Info().Int("leidas", len(in.Items)).Int("insertadas", out.Count).Msg("categorías de tarjeta importadas")
	return nil
}

// BanksCmd importa bancos e instituciones.
type BanksCmd struct {
	Organization string `required:"" env:"SEED_ORGANIZATION_ID" help:"ID de la organización destino"`
	File         string `arg:"" type:"existingfile" help:"Archivo CSV"`
}

func (c *BanksCmd) Run(ctx context.Context, g *Globals) error {
	rows, err := readFile(c.File, g.Latin1)
	if err != nil {
		return err
	}
	in, err := companyItems(rows)
	if err != nil {
		return err
	}
	out, err := g.Factory.MakeImportCompanies().Execute(ctx, c.Organization, in)
	if err != nil {
		return err
	}
	g.Log.Info().Int("leidas", len(in.Items)).Int("insertadas", out.Count).Msg("bancos importados")
	return nil
}

func readFile(path string, latin1 bool) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()
	return readRows(f, latin1)
}

func categoryItems(rows [][]string) (dto.ImportCategoriesRequest, error) {
	var in dto.ImportCategoriesRequest
	for i, r := range rows {
		typ := strings.ToLower(field(r, 1))
		if typ != "income" && typ != "expense" {
			return in, fmt.Errorf("fila %d: type debe ser income o expense, no %q", i+1, typ)
		}
		in.Items = append(in.Items, dto.CreateCategoryRequest{Name: r[0], Type: typ, Color: field(r, 2), Icon: field(r, 3)})
	}
	return in, nil
}

func creditCardItems(rows [][]string) dto.ImportCategoryCreditCardsRequest {
	var in dto.ImportCategoryCreditCardsRequest
	for _, r := range rows {
		in.Items = append(in.Items, dto.CategoryCreditCardRequest{Name: r[0], Code: field(r, 1)})
	}
	return in
}

func companyItems(rows [][]string) (dto.ImportCompaniesRequest, error) {
	var in dto.ImportCompaniesRequest
	for i, r := range rows {
		typ := strings.ToLower(field(r, 2))
		switch typ {
		case "":
			typ = "bank"
		case "bank", "credit_card", "broker":
		default:
			return in, fmt.Errorf("fila %d: type inválido %q", i+1, typ)
		}
		in.Items = append(in.Items, dto.CreateCompanyRequest{Name: r[0], Code: field(r, 1), Type: typ})
	}
	return in, nil
}
