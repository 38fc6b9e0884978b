package service

import (
	"context"
	"time"

	"roomsign/internal/ics"
	"roomsign/internal/logger"
	"roomsign/internal/models"
	"roomsign/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Display derives the full render payload for one sign. onDate ("2006-01-02")
// optionally pins the displayed day; empty means today in the resource's zone.
type Display interface {
	GetDisplayData(ctx context.Context, deviceID int, onDate string) (models.DisplayPayload, error)
}

// Resources exposes CRUD over the per-sign configuration records.
type Resources interface {
	List(ctx context.Context) ([]models.Resource, error)
	Get(ctx context.Context, id int) (models.Resource, error)
	Create(ctx context.Context, r models.Resource) (int, error)
	Update(ctx context.Context, r models.Resource) error
	Delete(ctx context.Context, id int) error
}

// Deps carries the cross-cutting collaborators services need beyond the
// repository layer.
type Deps struct {
	Fetcher    ics.Fetcher
	DefaultTZ  *time.Location // site-wide fallback zone for invalid/missing resource zones
	SigningKey string
	Log        *logger.Logger
}

// Service aggregates all sub-services.
type Service struct {
	Display
	Resources
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, deps Deps) *Service {
	return &Service{
		Display:       NewDisplayService(repos.Resources, deps.Fetcher, deps.DefaultTZ, deps.Log),
		Resources:     NewResourceService(repos.Resources, deps.DefaultTZ),
		Authorization: NewAuthService(repos.Auth, deps.SigningKey),
	}
}
