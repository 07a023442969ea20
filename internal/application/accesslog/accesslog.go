// Package accesslog casos de uso del registro de accesos. Las consultas vienen de la más reciente a la más antigua.
package accesslog

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

func toAccessLogResponse(l *entity.AccessLog) dto.AccessLogResponse {
	return dto.AccessLogResponse{
		ID:             l.ID,
		OrganizationID: l.OrganizationID,
		Action:         l.Action,
		IP:             l.IP,
		UserAgent:      l.UserAgent,
		CreatedAt:      l.CreatedAt,
	}
}

type CreateAccessLogUseCase struct {
	repo repository.AccessLogRepository
}

func NewCreateAccessLogUseCase(repo repository.AccessLogRepository) *CreateAccessLogUseCase {
	return &CreateAccessLogUseCase{repo: repo}
}

func (uc *CreateAccessLogUseCase) Execute(ctx context.Context, organizationID string, in dto.CreateAccessLogRequest) (*dto.AccessLogResponse, error) {
	created, err := uc.repo.Create(ctx, &entity.AccessLog{
		OrganizationID: organizationID,
		Action:         in.Action,
		IP:             in.IP,
		UserAgent:      in.UserAgent,
	})
	if err != nil {
		return nil, err
	}
	out := toAccessLogResponse(created)
	return &out, nil
}

type SearchAccessLogsUseCase struct {
	repo repository.AccessLogRepository
}

func NewSearchAccessLogsUseCase(repo repository.AccessLogRepository) *SearchAccessLogsUseCase {
	return &SearchAccessLogsUseCase{repo: repo}
}

func (uc *SearchAccessLogsUseCase) Execute(ctx context.Context, organizationID string) ([]dto.AccessLogResponse, error) {
	list, err := uc.repo.FindByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccessLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toAccessLogResponse(l))
	}
	return out, nil
}
