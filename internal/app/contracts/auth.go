package contracts

import (
	"context"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.LoginResult, error)
}
