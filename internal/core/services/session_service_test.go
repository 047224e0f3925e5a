package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/pres_finance_portal/internal/adapters/database/memory"
	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/SscSPs/pres_finance_portal/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService(t *testing.T) {
	repos := memory.NewRepositoryProvider(academicYear())
	svc := services.NewSessionService(repos.SessionRepo, repos.WalletRepo)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.False(t, session.HasSelection())

	_, err = svc.RequireSelectedWallet(ctx, session.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrNoWalletSelected)

	_, _, err = svc.SelectWallet(ctx, session.SessionID, "2030-01")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	updated, wallet, err := svc.SelectWallet(ctx, session.SessionID, february)
	require.NoError(t, err)
	assert.Equal(t, february, updated.SelectedWalletID)
	assert.Equal(t, "FEBRUARY", wallet.Name)

	walletID, err := svc.RequireSelectedWallet(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, february, walletID)

	_, err = svc.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
