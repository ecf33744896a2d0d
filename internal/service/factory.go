package service

import (
	"travelsuite.app/api/common/id"
	"travelsuite.app/api/internal/auth"
	"travelsuite.app/api/internal/queue"
	"travelsuite.app/api/internal/store"
)

type ServicesConfig struct {
	Stores         *store.Stores
	TxRunner       TxRunner
	Tokens         TokenIssuer
	Hasher         auth.PasswordHasher
	IDs            id.Generator
	Events         queue.Producer
	DefaultLogoURL string
}

type Services struct {
	cfg ServicesConfig
}

func NewServices(cfg ServicesConfig) *Services {
	if cfg.Events == nil {
		cfg.Events = queue.NopProducer{}
	}
	return &Services{cfg: cfg}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.cfg.Stores.Users(), s.cfg.Hasher, s.cfg.Tokens, s.cfg.IDs)
}

func (s *Services) Users() UserService {
	return NewUserService(s.cfg.Stores.Users(), s.cfg.Hasher)
}

func (s *Services) Organizations() OrganizationService {
	return NewOrganizationService(
		s.cfg.Stores.Organizations(),
		s.cfg.TxRunner,
		s.cfg.IDs,
		s.cfg.Events,
		s.cfg.DefaultLogoURL,
	)
}

func (s *Services) Tours() TourService {
	return NewTourService(
		s.cfg.Stores.Tours(),
		s.cfg.Stores.Organizations(),
		s.cfg.IDs,
		s.cfg.Events,
	)
}
