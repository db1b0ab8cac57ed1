package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/droppath/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/core/services"
)

// errTargetService fails every call with err.
type errTargetService struct {
	err error
}

func (m *errTargetService) AddTargets(_ context.Context, _ []string) (int, error) {
	return 0, m.err
}

func (m *errTargetService) List(_ context.Context) ([]domain.Target, error) {
	return nil, m.err
}

func (m *errTargetService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *errTargetService) ChangePath(_ context.Context, _, _ string) error {
	return m.err
}

func (m *errTargetService) SetRecursive(_ context.Context, _ string, _ bool) error {
	return m.err
}

var errDatabase = errors.New("database error")

// newTestServer returns a server backed by memory stores.
func newTestServer(t *testing.T) (*Server, *Ports) {
	t.Helper()
	targets := services.NewTargetService(memory.NewTargetStore(), nil)
	drops := services.NewDropService(targets, memory.NewDropStore(), nil)
	drops.OverridePlatform(domain.PlatformOther)

	ports := &Ports{Drop: drops, Target: targets, Platform: domain.PlatformOther}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server, ports
}
