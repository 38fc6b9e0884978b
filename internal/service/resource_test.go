package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"roomsign/internal/models"
)

func TestResourceService_CreateNormalizes(t *testing.T) {
	repo := &fakeResourceRepo{}
	s := NewResourceService(repo, berlinTZ(t))

	_, err := s.Create(context.Background(), models.Resource{
		ID:                 7,
		Name:               "  Room B  ",
		ICSURL:             " https://calendar.example/b.ics ",
		RefreshIntervalSec: 30,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(repo.resources) != 1 {
		t.Fatalf("expected 1 stored resource, got %d", len(repo.resources))
	}
	got := repo.resources[0]
	if got.Name != "Room B" {
		t.Fatalf("name not trimmed: %q", got.Name)
	}
	if got.ICSURL != "https://calendar.example/b.ics" {
		t.Fatalf("url not trimmed: %q", got.ICSURL)
	}
	if got.Template != "default" {
		t.Fatalf("template not defaulted: %q", got.Template)
	}
	if got.RefreshIntervalSec != 300 {
		t.Fatalf("sub-minute interval should fall back to default, got %d", got.RefreshIntervalSec)
	}
}

func TestResourceService_CreateClampsInterval(t *testing.T) {
	repo := &fakeResourceRepo{}
	s := NewResourceService(repo, berlinTZ(t))

	if _, err := s.Create(context.Background(), models.Resource{Name: "R", RefreshIntervalSec: 999999}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := repo.resources[0].RefreshIntervalSec; got != 7200 {
		t.Fatalf("interval not clamped to ceiling, got %d", got)
	}
}

func TestResourceService_CreateValidation(t *testing.T) {
	s := NewResourceService(&fakeResourceRepo{}, berlinTZ(t))

	cases := []struct {
		name string
		r    models.Resource
	}{
		{"bad night mode from", models.Resource{Name: "R", NightModeFrom: "late"}},
		{"bad night mode to", models.Resource{Name: "R", NightModeTo: "25h"}},
		{"unknown timezone", models.Resource{Name: "R", Timezone: "Mars/Olympus"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Create(context.Background(), tc.r); err == nil {
				t.Fatalf("expected validation error for %+v", tc.r)
			}
		})
	}
}

func TestResourceService_GetAbsent(t *testing.T) {
	s := NewResourceService(&fakeResourceRepo{}, berlinTZ(t))
	if _, err := s.Get(context.Background(), 42); !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestResourceService_UpdateDeleteMapNoRows(t *testing.T) {
	s := NewResourceService(&fakeResourceRepo{err: sql.ErrNoRows}, berlinTZ(t))

	if err := s.Update(context.Background(), models.Resource{ID: 5, Name: "R"}); !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("Update: expected ErrResourceNotFound, got %v", err)
	}
	if err := s.Delete(context.Background(), 5); !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("Delete: expected ErrResourceNotFound, got %v", err)
	}
}
