package suggestion_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/suggestion"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
)

func TestSuggestions_CrearYBuscar(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSuggestionRepository()
	_, err := suggestion.NewCreateSuggestionUseCase(repo).Execute(ctx, "org", dto.CreateSuggestionRequest{Title: "Modo oscuro", Description: "Para la app"})
	require.NoError(t, err)

	list, err := suggestion.NewSearchSuggestionsUseCase(repo).Execute(ctx, "org")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Modo oscuro", list[0].Title)
}
