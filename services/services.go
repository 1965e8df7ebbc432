package services

import (
	"go.uber.org/zap"

	"github.com/blogem/finportal/repositories"
)

// Services holds all service instances
type Services struct {
	Auth        AuthService
	Records     RecordService
	Audit       AuditService
	Interceptor ChangeInterceptor
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, logger *zap.Logger) *Services {
	interceptor := NewChangeInterceptor(repos.Tx, logger)
	return &Services{
		Auth:        NewAuthService(repos.Users, logger),
		Records:     NewRecordService(repos.Records, repos.Users, interceptor, logger),
		Audit:       NewAuditService(repos.Audit),
		Interceptor: interceptor,
	}
}
