// Package goal contiene los casos de uso de metas de ahorro.
package goal

import (
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

func toGoalResponse(g *entity.Goal) dto.GoalResponse {
	return dto.GoalResponse{
		ID:             g.ID,
		OrganizationID: g.OrganizationID,
		Title:          g.Title,
		Description:    g.Description,
		TargetAmount:   g.TargetAmount,
		CurrentAmount:  g.CurrentAmount,
		Deadline:       g.Deadline,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}
