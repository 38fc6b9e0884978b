package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"roomsign/internal/models"
	"roomsign/internal/repository"
)

const defaultTemplate = "default"

var (
	errInvalidNightWindow = errors.New("night mode times must be empty or \"HH:MM\"")

	clockFieldRe = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// ResourceService validates and normalizes sign configuration before it hits
// the store, so the display path can trust what it reads back.
type ResourceService struct {
	repo      repository.ResourceRepo
	defaultTZ *time.Location
}

func NewResourceService(repo repository.ResourceRepo, defaultTZ *time.Location) *ResourceService {
	return &ResourceService{repo: repo, defaultTZ: defaultTZ}
}

func (s *ResourceService) List(ctx context.Context) ([]models.Resource, error) {
	return s.repo.List(ctx)
}

func (s *ResourceService) Get(ctx context.Context, id int) (models.Resource, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Resource{}, err
	}
	if r == nil {
		return models.Resource{}, ErrResourceNotFound
	}
	return *r, nil
}

func (s *ResourceService) Create(ctx context.Context, r models.Resource) (int, error) {
	norm, err := s.normalize(r)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, norm)
}

func (s *ResourceService) Update(ctx context.Context, r models.Resource) error {
	norm, err := s.normalize(r)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, norm); err != nil {
		if isNoRows(err) {
			return ErrResourceNotFound
		}
		return err
	}
	return nil
}

func (s *ResourceService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isNoRows(err) {
			return ErrResourceNotFound
		}
		return err
	}
	return nil
}

// normalize trims text fields, defaults the template and refresh interval,
// clamps the interval into its allowed range and rejects values the display
// path would otherwise silently misread.
func (s *ResourceService) normalize(r models.Resource) (models.Resource, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.ICSURL = strings.TrimSpace(r.ICSURL)
	r.QRURL = strings.TrimSpace(r.QRURL)
	r.Timezone = strings.TrimSpace(r.Timezone)
	r.NightModeFrom = strings.TrimSpace(r.NightModeFrom)
	r.NightModeTo = strings.TrimSpace(r.NightModeTo)

	if r.Template == "" {
		r.Template = defaultTemplate
	}

	if r.RefreshIntervalSec < refreshFloor {
		r.RefreshIntervalSec = defaultRefreshSeconds
	} else {
		r.RefreshIntervalSec = clampInt(r.RefreshIntervalSec, refreshFloor, refreshCeil)
	}

	for _, v := range []string{r.NightModeFrom, r.NightModeTo} {
		if v != "" && !clockFieldRe.MatchString(v) {
			return models.Resource{}, errInvalidNightWindow
		}
	}

	if r.Timezone != "" {
		if _, err := time.LoadLocation(r.Timezone); err != nil {
			return models.Resource{}, fmt.Errorf("unknown timezone %q", r.Timezone)
		}
	}
	return r, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
