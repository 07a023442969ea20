package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Finanzas-api/internal/factory"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

const orgID = "00000000-0000-0000-0000-0000000000aa"

func newGlobals() *Globals {
	store := memory.NewStore()
	return &Globals{
		Factory: factory.New(factory.Deps{Store: store, Tx: memory.NewTxRunner(store)}),
		Log:     logger.Nop(),
	}
}

func writeCSV(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.csv")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestReadRows_CabeceraComentariosYVacias(t *testing.T) {
	rows, err := readRows(strings.NewReader("name,code\n# comentario\nBanco Uno, 001\n\n,sin nombre\nBanco Dos\n"), false)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Banco Uno", "001"}, rows[0])
	assert.Equal(t, []string{"Banco Dos"}, rows[1])
}

func TestReadRows_Latin1(t *testing.T) {
	raw, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte("Educación,expense\n"))
	require.NoError(t, err)

	rows, err := readRows(strings.NewReader(string(raw)), true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Educación", rows[0][0])
}

func TestCategoriesCmd_Idempotente(t *testing.T) {
	g := newGlobals()
	cmd := &CategoriesCmd{Organization: orgID, File: writeCSV(t, []byte("name,type\nComida,expense\nSalario,INCOME\n"))}

	require.NoError(t, cmd.Run(context.Background(), g))
	require.NoError(t, cmd.Run(context.Background(), g))

	out, err := g.Factory.MakeSearchCategories().Execute(context.Background(), orgID)
	require.NoError(t, err)
	assert.Len(t, out.Categories, 2)
}

func TestCategoriesCmd_TipoInvalido(t *testing.T) {
	cmd := &CategoriesCmd{Organization: orgID, File: writeCSV(t, []byte("Comida,otro\n"))}
	err := cmd.Run(context.Background(), newGlobals())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fila 1")
}

func TestBanksCmd_TipoPorDefecto(t *testing.T) {
	g := newGlobals()
	cmd := &BanksCmd{Organization: orgID, File: writeCSV(t, []byte("Banco Uno,001\nBroker X,,broker\n"))}
	require.NoError(t, cmd.Run(context.Background(), g))

	out, err := g.Factory.MakeSearchCompanies().Execute(context.Background(), orgID)
	require.NoError(t, err)
	types := map[string]string{}
	for _, c := range out.Companies {
		types[c.Name] = c.Type
	}
	assert.Equal(t, map[string]string{"Banco Uno": "bank", "Broker X": "broker"}, types)
}

func TestCreditCardCategoriesCmd(t *testing.T) {
	g := newGlobals()
	cmd := &CreditCardCategoriesCmd{File: writeCSV(t, []byte("Viajes,TRV\nSupermercado\n"))}
	require.NoError(t, cmd.Run(context.Background(), g))

	out, err := g.Factory.MakeSearchCategoryCreditCards().Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Supermercado", out[0].Name, "ordenadas por nombre")
}
