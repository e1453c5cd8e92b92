package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestLoadHierarchy(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCampaignSetRepository(mock)

	setID, owner, acct := uuid.New(), uuid.New(), uuid.New()
	c1, c2 := uuid.New(), uuid.New()
	g1 := uuid.New()
	ad1, kw1 := uuid.New(), uuid.New()
	synced := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	syncedPtr := &synced

	mock.ExpectQuery(`FROM campaign_sets`).
		WithArgs(setID).
		WillReturnRows(pgxmock.NewRows([]string{"owner_id", "platform", "ad_account_id", "fallback_strategy", "status", "last_synced_at"}).
			AddRow(owner, domain.PlatformReddit, &acct, "truncate", domain.CampaignSetPartial, syncedPtr))
	mock.ExpectQuery(`FROM campaigns`).
		WithArgs(setID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "platform", "remote_id", "sync_status"}).
			AddRow(c1, "First", domain.PlatformReddit, "camp_1", domain.SyncStatusSynced).
			AddRow(c2, "Second", domain.PlatformReddit, "", domain.SyncStatusPending))
	mock.ExpectQuery(`FROM ad_groups`).
		WithArgs(setID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "campaign_id", "name", "remote_id", "sync_status"}).
			AddRow(g1, c1, "Group", "ag_1", domain.SyncStatusSynced))
	mock.ExpectQuery(`FROM ads`).
		WithArgs(setID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "ad_group_id", "headline", "description", "display_url", "final_url", "remote_id", "sync_status"}).
			AddRow(ad1, g1, "Fast shoes", "Run", "shoes.example", "https://shoes.example", "", domain.SyncStatusFailed))
	mock.ExpectQuery(`FROM keywords`).
		WithArgs(setID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "ad_group_id", "text", "match_type", "remote_id", "sync_status"}).
			AddRow(kw1, g1, "running shoes", domain.MatchExact, "kw_1", domain.SyncStatusSynced))

	set, err := repo.LoadHierarchy(context.Background(), setID)
	require.NoError(t, err)

	assert.Equal(t, owner, set.OwnerID)
	assert.Equal(t, acct, set.Config.AdAccountID)
	assert.Equal(t, domain.CampaignSetPartial, set.Status)
	require.NotNil(t, set.LastSyncedAt)
	assert.True(t, synced.Equal(*set.LastSyncedAt))

	require.Len(t, set.Campaigns, 2)
	assert.Equal(t, "camp_1", set.Campaigns[0].RemoteID)
	assert.Equal(t, setID, set.Campaigns[0].CampaignSetID)
	assert.Empty(t, set.Campaigns[1].RemoteID)
	assert.Empty(t, set.Campaigns[1].AdGroups)

	require.Len(t, set.Campaigns[0].AdGroups, 1)
	g := set.Campaigns[0].AdGroups[0]
	require.Len(t, g.Ads, 1)
	assert.Equal(t, domain.SyncStatusFailed, g.Ads[0].SyncStatus)
	require.Len(t, g.Keywords, 1)
	assert.Equal(t, "kw_1", g.Keywords[0].RemoteID)
	assert.Equal(t, 5, set.CountEntities())
}

func TestLoadHierarchy_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCampaignSetRepository(mock)
	setID := uuid.New()

	mock.ExpectQuery(`FROM campaign_sets`).WithArgs(setID).WillReturnError(pgx.ErrNoRows)

	_, err := repo.LoadHierarchy(context.Background(), setID)
	require.ErrorIs(t, err, port.ErrEntityNotFound)
}

func TestUpdateRemoteID(t *testing.T) {
	tests := []struct {
		name  string
		table string
		call  func(r *CampaignSetRepository, id uuid.UUID) error
	}{
		{"campaign", "campaigns", func(r *CampaignSetRepository, id uuid.UUID) error {
			return r.UpdateCampaignRemoteID(context.Background(), id, "r_1")
		}},
		{"ad group", "ad_groups", func(r *CampaignSetRepository, id uuid.UUID) error {
			return r.UpdateAdGroupRemoteID(context.Background(), id, "r_1")
		}},
		{"ad", "ads", func(r *CampaignSetRepository, id uuid.UUID) error {
			return r.UpdateAdRemoteID(context.Background(), id, "r_1")
		}},
		{"keyword", "keywords", func(r *CampaignSetRepository, id uuid.UUID) error {
			return r.UpdateKeywordRemoteID(context.Background(), id, "r_1")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewCampaignSetRepository(mock)
			id := uuid.New()

			mock.ExpectExec(`UPDATE `+tt.table+` SET remote_id`).
				WithArgs(id, "r_1").
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))

			require.NoError(t, tt.call(repo, id))
		})
	}
}

func TestUpdateRemoteID_Unknown(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCampaignSetRepository(mock)
	id := uuid.New()

	mock.ExpectExec(`UPDATE campaigns SET remote_id`).
		WithArgs(id, "camp_1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateCampaignRemoteID(context.Background(), id, "camp_1")
	require.ErrorIs(t, err, port.ErrEntityNotFound)
}

func TestUpdateRemoteID_RejectsEmpty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCampaignSetRepository(mock)

	err := repo.UpdateAdRemoteID(context.Background(), uuid.New(), "")
	require.ErrorIs(t, err, port.ErrEmptyRemoteID)
}

func TestUpdateSyncStatus(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCampaignSetRepository(mock)
	id := uuid.New()

	mock.ExpectExec(`UPDATE ad_groups SET sync_status`).
		WithArgs(id, "failed").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateSyncStatus(context.Background(), domain.EntityRef{Kind: domain.KindAdGroup, ID: id}, domain.SyncStatusFailed)
	require.NoError(t, err)
}

func TestUpdateSyncStatus_DatabaseError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCampaignSetRepository(mock)
	id := uuid.New()
	boom := errors.New("connection reset")

	mock.ExpectExec(`UPDATE keywords SET sync_status`).
		WithArgs(id, "synced").
		WillReturnError(boom)

	err := repo.UpdateSyncStatus(context.Background(), domain.EntityRef{Kind: domain.KindKeyword, ID: id}, domain.SyncStatusSynced)
	require.ErrorIs(t, err, boom)
}

func TestSetCampaignSetStatus(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCampaignSetRepository(mock)
	id := uuid.New()

	mock.ExpectExec(`UPDATE campaign_sets SET status`).
		WithArgs(id, "syncing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.SetCampaignSetStatus(context.Background(), id, domain.CampaignSetSyncing))
}

func TestRecordSyncResult(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCampaignSetRepository(mock)
	setID := uuid.New()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	result := domain.SyncJobResult{Success: true, SetID: setID, Synced: 2, Failed: 1}

	mock.ExpectExec(`INSERT INTO sync_results`).
		WithArgs(setID, "partial", at, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.RecordSyncResult(context.Background(), result, at))
}

func TestRecordSyncResult_UnknownSet(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCampaignSetRepository(mock)
	setID := uuid.New()
	at := time.Now()

	mock.ExpectExec(`INSERT INTO sync_results`).
		WithArgs(setID, "synced", at, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err := repo.RecordSyncResult(context.Background(), domain.SyncJobResult{SetID: setID}, at)
	require.ErrorIs(t, err, port.ErrEntityNotFound)
}
