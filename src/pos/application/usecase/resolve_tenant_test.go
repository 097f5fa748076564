package usecase

import (
	"context"
	"errors"
	"testing"

	"pos/src/pos/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTenantOwner(t *testing.T) {
	repo := &fakeTenantRepo{
		owners: map[string]string{"owner-1": "Almacen Central"},
	}
	uc := NewResolveTenantUseCase(repo)

	tenantID, err := uc.Execute(context.Background(), "owner-1", "owner@shop.com")

	require.NoError(t, err)
	assert.Equal(t, "owner-1", tenantID)
}

func TestResolveTenantEmployee(t *testing.T) {
	repo := &fakeTenantRepo{
		owners:    map[string]string{},
		employees: map[string]string{"maria@shop.com": "owner-1"},
	}
	uc := NewResolveTenantUseCase(repo)

	// El email del operador llega sin normalizar; el match es por la forma
	// normalizada que se guardó al provisionar
	tenantID, err := uc.Execute(context.Background(), "emp-9", "  Maria@Shop.COM  ")

	require.NoError(t, err)
	assert.Equal(t, "owner-1", tenantID)
}

// Un registro de negocio sin nombre fue creado como empleado: no acredita
// como dueño y la resolución sigue al lookup por email
func TestResolveTenantEmptyBusinessNameFallsThrough(t *testing.T) {
	repo := &fakeTenantRepo{
		owners:    map[string]string{"emp-9": ""},
		employees: map[string]string{"maria@shop.com": "owner-1"},
	}
	uc := NewResolveTenantUseCase(repo)

	tenantID, err := uc.Execute(context.Background(), "emp-9", "maria@shop.com")

	require.NoError(t, err)
	assert.Equal(t, "owner-1", tenantID)
}

func TestResolveTenantNoMatch(t *testing.T) {
	repo := &fakeTenantRepo{
		owners:    map[string]string{},
		employees: map[string]string{},
	}
	uc := NewResolveTenantUseCase(repo)

	_, err := uc.Execute(context.Background(), "ghost", "ghost@nowhere.com")
	assert.ErrorIs(t, err, entity.ErrNoTenantFound)
}

func TestResolveTenantEmptyOperator(t *testing.T) {
	uc := NewResolveTenantUseCase(&fakeTenantRepo{})

	_, err := uc.Execute(context.Background(), "", "someone@shop.com")
	assert.ErrorIs(t, err, entity.ErrNoTenantFound)
}

func TestResolveTenantRepoError(t *testing.T) {
	repoErr := errors.New("connection refused")
	uc := NewResolveTenantUseCase(&fakeTenantRepo{err: repoErr})

	_, err := uc.Execute(context.Background(), "owner-1", "owner@shop.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, entity.ErrNoTenantFound)
}
