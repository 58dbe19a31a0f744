package profile

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lernbox/lernbox/internal/store"
)

// mockProfileRepo implements store.ProfileRepo in memory.
type mockProfileRepo struct {
	profiles map[string]*store.Profile
	nextID   int
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: map[string]*store.Profile{}}
}

func (m *mockProfileRepo) Create(_ context.Context, name, avatar string) (*store.Profile, error) {
	m.nextID++
	p := &store.Profile{
		ID:        strings.Repeat("p", m.nextID),
		Name:      name,
		Avatar:    avatar,
		CreatedAt: time.Now(),
	}
	m.profiles[p.ID] = p
	return p, nil
}

func (m *mockProfileRepo) List(_ context.Context) ([]store.Profile, error) {
	var out []store.Profile
	for _, p := range m.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProfileRepo) Get(_ context.Context, id string) (*store.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) Rename(_ context.Context, id, name string) error {
	p, ok := m.profiles[id]
	if !ok {
		return store.ErrProfileNotFound
	}
	p.Name = name
	return nil
}

func (m *mockProfileRepo) Touch(_ context.Context, id string) error {
	p, ok := m.profiles[id]
	if !ok {
		return store.ErrProfileNotFound
	}
	p.LastActiveAt = time.Now()
	return nil
}

func (m *mockProfileRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.profiles[id]; !ok {
		return store.ErrProfileNotFound
	}
	delete(m.profiles, id)
	return nil
}

// mockSettingsRepo implements store.SettingsRepo in memory.
type mockSettingsRepo struct {
	values map[string]string
}

func newMockSettingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{values: map[string]string{}}
}

func (m *mockSettingsRepo) Get(_ context.Context, profileID, key string) (string, bool, error) {
	v, ok := m.values[profileID+"/"+key]
	return v, ok, nil
}

func (m *mockSettingsRepo) Set(_ context.Context, profileID, key, value string) error {
	m.values[profileID+"/"+key] = value
	return nil
}

func (m *mockSettingsRepo) DeleteForProfile(_ context.Context, profileID string) error {
	for k := range m.values {
		if strings.HasPrefix(k, profileID+"/") {
			delete(m.values, k)
		}
	}
	return nil
}

func newTestService() (*Service, *mockProfileRepo, *mockSettingsRepo) {
	profiles := newMockProfileRepo()
	settings := newMockSettingsRepo()
	return NewService(profiles, settings), profiles, settings
}

func TestCreateGeneratesNameAndAvatar(t *testing.T) {
	svc, _, _ := newTestService()
	p, err := svc.Create(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name == "" || p.Avatar == "" {
		t.Fatalf("blank fields not filled: %+v", p)
	}
	if !strings.Contains(p.Name, " ") {
		t.Fatalf("generated name %q not in adjective-animal form", p.Name)
	}
}

func TestCreateNormalizesName(t *testing.T) {
	svc, _, _ := newTestService()
	p, err := svc.Create(context.Background(), "  Mia   Lou  ", "🐼")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name != "Mia Lou" {
		t.Fatalf("name = %q, want %q", p.Name, "Mia Lou")
	}
}

func TestRenameRejectsEmpty(t *testing.T) {
	svc, _, _ := newTestService()
	p, _ := svc.Create(context.Background(), "Mia", "")
	if err := svc.Rename(context.Background(), p.ID, "   "); err != ErrEmptyName {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestActiveProfileRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()
	p, _ := svc.Create(context.Background(), "Mia", "")

	if err := svc.SetActive(context.Background(), p.ID); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	active, err := svc.ActiveProfileID(context.Background())
	if err != nil || active != p.ID {
		t.Fatalf("active = %q err = %v, want %q", active, err, p.ID)
	}
}

func TestDeleteClearsActiveAndSettings(t *testing.T) {
	svc, _, settings := newTestService()
	p, _ := svc.Create(context.Background(), "Mia", "")
	_ = svc.SetActive(context.Background(), p.ID)
	_ = settings.Set(context.Background(), p.ID, "sound", "off")

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	active, _ := svc.ActiveProfileID(context.Background())
	if active != "" {
		t.Fatalf("active still %q after delete", active)
	}
	if _, ok, _ := settings.Get(context.Background(), p.ID, "sound"); ok {
		t.Fatal("per-profile settings survived delete")
	}
}

func TestPINLifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if err := svc.EnsurePIN(ctx); err != nil {
		t.Fatalf("EnsurePIN: %v", err)
	}
	if err := svc.VerifyPIN(ctx, DefaultPIN); err != nil {
		t.Fatalf("default pin rejected: %v", err)
	}
	if err := svc.VerifyPIN(ctx, "9999"); err != ErrWrongPIN {
		t.Fatalf("expected ErrWrongPIN, got %v", err)
	}

	if err := svc.SetPIN(ctx, "2468"); err != nil {
		t.Fatalf("SetPIN: %v", err)
	}
	if err := svc.VerifyPIN(ctx, "2468"); err != nil {
		t.Fatalf("new pin rejected: %v", err)
	}
	if err := svc.VerifyPIN(ctx, DefaultPIN); err != ErrWrongPIN {
		t.Fatal("old pin still accepted")
	}

	// EnsurePIN must not reset a custom pin.
	if err := svc.EnsurePIN(ctx); err != nil {
		t.Fatalf("EnsurePIN: %v", err)
	}
	if err := svc.VerifyPIN(ctx, "2468"); err != nil {
		t.Fatal("EnsurePIN overwrote custom pin")
	}
}

func TestSetPINValidation(t *testing.T) {
	svc, _, _ := newTestService()
	for _, pin := range []string{"", "123", "12345", "abcd", "12a4"} {
		if err := svc.SetPIN(context.Background(), pin); err != ErrBadPIN {
			t.Errorf("SetPIN(%q) = %v, want ErrBadPIN", pin, err)
		}
	}
}
