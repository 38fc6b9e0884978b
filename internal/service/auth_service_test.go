package service

import (
	"errors"
	"testing"

	"roomsign/internal/models"
)

type fakeAuthRepo struct {
	users  map[string]models.User
	nextID int
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{users: map[string]models.User{}, nextID: 1}
}

func (f *fakeAuthRepo) Create(username, hash string) (int, error) {
	if _, ok := f.users[username]; ok {
		return 0, errors.New("username taken")
	}
	id := f.nextID
	f.nextID++
	f.users[username] = models.User{ID: id, Username: username, PasswordHash: hash}
	return id, nil
}

func (f *fakeAuthRepo) GetByUsername(username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func TestAuth_SignUpAndTokenRoundtrip(t *testing.T) {
	s := NewAuthService(newFakeAuthRepo(), "test-signing-key")

	id, err := s.SignUp("admin", "s3cret")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	token, err := s.GenerateToken("admin", "s3cret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	gotID, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if gotID != id {
		t.Fatalf("token carries user %d, want %d", gotID, id)
	}
}

func TestAuth_SignUpEmptyPassword(t *testing.T) {
	s := NewAuthService(newFakeAuthRepo(), "k")
	if _, err := s.SignUp("admin", "   "); err == nil {
		t.Fatalf("expected error for blank password")
	}
}

func TestAuth_WrongPassword(t *testing.T) {
	s := NewAuthService(newFakeAuthRepo(), "k")
	if _, err := s.SignUp("admin", "s3cret"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if _, err := s.GenerateToken("admin", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestAuth_UnknownUser(t *testing.T) {
	s := NewAuthService(newFakeAuthRepo(), "k")
	if _, err := s.GenerateToken("ghost", "pw"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuth_ParseRejectsForeignKey(t *testing.T) {
	issuer := NewAuthService(newFakeAuthRepo(), "key-one")
	verifier := NewAuthService(newFakeAuthRepo(), "key-two")

	if _, err := issuer.SignUp("admin", "s3cret"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	token, err := issuer.GenerateToken("admin", "s3cret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatalf("token signed with another key must not parse")
	}
}

func TestAuth_ParseGarbage(t *testing.T) {
	s := NewAuthService(newFakeAuthRepo(), "k")
	if _, err := s.ParseToken("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
