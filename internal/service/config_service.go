package service

import (
	"context"

	"github.com/msambrenil/OjitosSinUsuarios/internal/apierror"
	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/model"
	"github.com/msambrenil/OjitosSinUsuarios/internal/repository"
)

// ConfigService reads and partially updates the site configuration singleton.
type ConfigService interface {
	Obtener(ctx context.Context) (*dto.ConfigResponse, error)
	Actualizar(ctx context.Context, req dto.ActualizarConfigRequest) (*dto.ConfigResponse, error)
}

type configService struct {
	repo repository.ConfigRepository
}

func NewConfigService(repo repository.ConfigRepository) ConfigService {
	return &configService{repo: repo}
}

func (s *configService) Obtener(ctx context.Context) (*dto.ConfigResponse, error) {
	cfg, err := s.repo.Obtener(ctx)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}
	return configToResponse(cfg), nil
}

func (s *configService) Actualizar(ctx context.Context, req dto.ActualizarConfigRequest) (*dto.ConfigResponse, error) {
	cfg, err := s.repo.Obtener(ctx)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}

	if req.SiteName != nil {
		cfg.SiteName = *req.SiteName
	}
	if req.BrandColorPrimary != nil {
		cfg.BrandColorPrimary = *req.BrandColorPrimary
	}
	if req.LogoURL != nil {
		cfg.LogoURL = req.LogoURL
	}
	if req.ContactInfo != nil {
		cfg.ContactInfo = req.ContactInfo
	}
	if req.SocialInstagram != nil {
		cfg.SocialInstagram = req.SocialInstagram
	}
	if req.SocialTikTok != nil {
		cfg.SocialTikTok = req.SocialTikTok
	}
	if req.SocialWhatsApp != nil {
		cfg.SocialWhatsApp = req.SocialWhatsApp
	}
	if req.FeriaOnlineLink != nil {
		cfg.FeriaOnlineLink = req.FeriaOnlineLink
	}
	if req.ShowroomAddress != nil {
		cfg.ShowroomAddress = req.ShowroomAddress
	}
	if req.IsFeriaModeActive != nil {
		cfg.IsFeriaModeActive = *req.IsFeriaModeActive
	}

	if err := s.repo.Actualizar(ctx, cfg); err != nil {
		return nil, apierror.NewPersistence(err)
	}
	return configToResponse(cfg), nil
}

func configToResponse(c *model.Configuracion) *dto.ConfigResponse {
	return &dto.ConfigResponse{
		ID:                c.ID.String(),
		SiteName:          c.SiteName,
		BrandColorPrimary: c.BrandColorPrimary,
		LogoURL:           c.LogoURL,
		ContactInfo:       c.ContactInfo,
		SocialInstagram:   c.SocialInstagram,
		SocialTikTok:      c.SocialTikTok,
		SocialWhatsApp:    c.SocialWhatsApp,
		FeriaOnlineLink:   c.FeriaOnlineLink,
		ShowroomAddress:   c.ShowroomAddress,
		IsFeriaModeActive: c.IsFeriaModeActive,
	}
}
