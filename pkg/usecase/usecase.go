package usecase

import (
	"github.com/m-mizutani/rebranch/pkg/domain/interfaces"
	"github.com/m-mizutani/rebranch/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}
