package credentials

import (
	"context"
	"strconv"

	"github.com/LabsDAO/data-gamify-network/internal/client/kvstore"
	"github.com/LabsDAO/data-gamify-network/internal/common"
	"github.com/LabsDAO/data-gamify-network/internal/storage"
)

// Modes holds the per-provider "real vs simulated" upload flags. The handle
// is injected into whoever needs it instead of living in package state, so
// concurrent upload sessions and tests do not interfere. Flags default to
// real mode and persist across restarts; concurrent writes are
// last-write-wins, which is acceptable because toggles are user-initiated.
type Modes struct {
	store kvstore.Store
}

// NewModes builds a mode handle over the given state store.
func NewModes(store kvstore.Store) *Modes {
	return &Modes{store: store}
}

func modeKey(p storage.Provider) string {
	if p == storage.ProviderAWS {
		return common.KeyUseRealAWS
	}
	return common.KeyUseRealOORT
}

// UseReal reports whether uploads for the provider hit the real backend.
// Absent or unparseable state means real mode.
func (m *Modes) UseReal(ctx context.Context, p storage.Provider) bool {
	raw, err := m.store.Get(ctx, modeKey(p))
	if err != nil {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

// SetReal persists the flag for the provider.
func (m *Modes) SetReal(ctx context.Context, p storage.Provider, real bool) error {
	return m.store.Put(ctx, modeKey(p), strconv.FormatBool(real))
}

// Toggle flips the flag and returns the new value.
func (m *Modes) Toggle(ctx context.Context, p storage.Provider) (bool, error) {
	next := !m.UseReal(ctx, p)
	if err := m.SetReal(ctx, p, next); err != nil {
		return false, err
	}
	return next, nil
}

// ForceReal switches both providers to real mode, the forced-real
// initialization used on startup.
func (m *Modes) ForceReal(ctx context.Context) error {
	if err := m.SetReal(ctx, storage.ProviderAWS, true); err != nil {
		return err
	}
	return m.SetReal(ctx, storage.ProviderOORT, true)
}
