package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

// CampaignSetRepository implements port.EntityRepository on PostgreSQL.
// Every write is a single statement, so each is atomic on its own.
type CampaignSetRepository struct {
	db DB
}

var _ port.EntityRepository = (*CampaignSetRepository)(nil)

// NewCampaignSetRepository returns a repository backed by db, usually a
// *pgxpool.Pool.
func NewCampaignSetRepository(db DB) *CampaignSetRepository {
	return &CampaignSetRepository{db: db}
}

// LoadHierarchy reads the set and its four levels with one query per level
// and assembles the tree in position order.
func (r *CampaignSetRepository) LoadHierarchy(ctx context.Context, setID uuid.UUID) (*domain.CampaignSet, error) {
	set := &domain.CampaignSet{ID: setID}
	var adAccountID *uuid.UUID
	err := r.db.QueryRow(ctx, `
        SELECT owner_id, platform, ad_account_id, fallback_strategy, status, last_synced_at
        FROM campaign_sets
        WHERE id = $1`, setID).
		Scan(&set.OwnerID, &set.Config.Platform, &adAccountID, &set.Config.FallbackStrategy, &set.Status, &set.LastSyncedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("campaign set %s: %w", setID, port.ErrEntityNotFound)
		}
		return nil, fmt.Errorf("load campaign set: %w", err)
	}
	if adAccountID != nil {
		set.Config.AdAccountID = *adAccountID
	}

	rows, err := r.db.Query(ctx, `
        SELECT id, name, platform, COALESCE(remote_id, ''), sync_status
        FROM campaigns
        WHERE campaign_set_id = $1
        ORDER BY position`, setID)
	if err != nil {
		return nil, fmt.Errorf("load campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Campaign, error) {
		c := &domain.Campaign{CampaignSetID: setID}
		err := row.Scan(&c.ID, &c.Name, &c.Platform, &c.RemoteID, &c.SyncStatus)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	set.Campaigns = campaigns
	byCampaign := make(map[uuid.UUID]*domain.Campaign, len(campaigns))
	for _, c := range campaigns {
		byCampaign[c.ID] = c
	}

	rows, err = r.db.Query(ctx, `
        SELECT g.id, g.campaign_id, g.name, COALESCE(g.remote_id, ''), g.sync_status
        FROM ad_groups g
        JOIN campaigns c ON c.id = g.campaign_id
        WHERE c.campaign_set_id = $1
        ORDER BY c.position, g.position`, setID)
	if err != nil {
		return nil, fmt.Errorf("load ad groups: %w", err)
	}
	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.AdGroup, error) {
		g := &domain.AdGroup{}
		err := row.Scan(&g.ID, &g.CampaignID, &g.Name, &g.RemoteID, &g.SyncStatus)
		return g, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan ad groups: %w", err)
	}
	byGroup := make(map[uuid.UUID]*domain.AdGroup, len(groups))
	for _, g := range groups {
		byGroup[g.ID] = g
		if c, ok := byCampaign[g.CampaignID]; ok {
			c.AdGroups = append(c.AdGroups, g)
		}
	}

	rows, err = r.db.Query(ctx, `
        SELECT a.id, a.ad_group_id, a.headline, a.description, a.display_url, a.final_url,
               COALESCE(a.remote_id, ''), a.sync_status
        FROM ads a
        JOIN ad_groups g ON g.id = a.ad_group_id
        JOIN campaigns c ON c.id = g.campaign_id
        WHERE c.campaign_set_id = $1
        ORDER BY c.position, g.position, a.position`, setID)
	if err != nil {
		return nil, fmt.Errorf("load ads: %w", err)
	}
	ads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Ad, error) {
		a := &domain.Ad{}
		err := row.Scan(&a.ID, &a.AdGroupID, &a.Headline, &a.Description, &a.DisplayURL, &a.FinalURL, &a.RemoteID, &a.SyncStatus)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan ads: %w", err)
	}
	for _, a := range ads {
		if g, ok := byGroup[a.AdGroupID]; ok {
			g.Ads = append(g.Ads, a)
		}
	}

	rows, err = r.db.Query(ctx, `
        SELECT k.id, k.ad_group_id, k.text, k.match_type, COALESCE(k.remote_id, ''), k.sync_status
        FROM keywords k
        JOIN ad_groups g ON g.id = k.ad_group_id
        JOIN campaigns c ON c.id = g.campaign_id
        WHERE c.campaign_set_id = $1
        ORDER BY c.position, g.position, k.position`, setID)
	if err != nil {
		return nil, fmt.Errorf("load keywords: %w", err)
	}
	keywords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Keyword, error) {
		k := &domain.Keyword{}
		err := row.Scan(&k.ID, &k.AdGroupID, &k.Text, &k.MatchType, &k.RemoteID, &k.SyncStatus)
		return k, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan keywords: %w", err)
	}
	for _, k := range keywords {
		if g, ok := byGroup[k.AdGroupID]; ok {
			g.Keywords = append(g.Keywords, k)
		}
	}

	return set, nil
}

func (r *CampaignSetRepository) UpdateCampaignRemoteID(ctx context.Context, id uuid.UUID, remoteID string) error {
	return r.setRemoteID(ctx, domain.KindCampaign, id, remoteID)
}

func (r *CampaignSetRepository) UpdateAdGroupRemoteID(ctx context.Context, id uuid.UUID, remoteID string) error {
	return r.setRemoteID(ctx, domain.KindAdGroup, id, remoteID)
}

func (r *CampaignSetRepository) UpdateAdRemoteID(ctx context.Context, id uuid.UUID, remoteID string) error {
	return r.setRemoteID(ctx, domain.KindAd, id, remoteID)
}

func (r *CampaignSetRepository) UpdateKeywordRemoteID(ctx context.Context, id uuid.UUID, remoteID string) error {
	return r.setRemoteID(ctx, domain.KindKeyword, id, remoteID)
}

func (r *CampaignSetRepository) setRemoteID(ctx context.Context, kind domain.EntityKind, id uuid.UUID, remoteID string) error {
	if remoteID == "" {
		return port.ErrEmptyRemoteID
	}
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE `+table+` SET remote_id = $2, updated_at = now() WHERE id = $1`, id, remoteID)
	if err != nil {
		return fmt.Errorf("update %s remote id: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, port.ErrEntityNotFound)
	}
	return nil
}

func (r *CampaignSetRepository) UpdateSyncStatus(ctx context.Context, ref domain.EntityRef, status domain.SyncStatus) error {
	table, err := tableFor(ref.Kind)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE `+table+` SET sync_status = $2, updated_at = now() WHERE id = $1`, ref.ID, string(status))
	if err != nil {
		return fmt.Errorf("update %s sync status: %w", ref.Kind, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", ref.Kind, ref.ID, port.ErrEntityNotFound)
	}
	return nil
}

func (r *CampaignSetRepository) SetCampaignSetStatus(ctx context.Context, setID uuid.UUID, status domain.CampaignSetStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE campaign_sets SET status = $2, updated_at = now() WHERE id = $1`, setID, string(status))
	if err != nil {
		return fmt.Errorf("update campaign set status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign set %s: %w", setID, port.ErrEntityNotFound)
	}
	return nil
}

// RecordSyncResult updates the set status and appends the result in one
// statement.
func (r *CampaignSetRepository) RecordSyncResult(ctx context.Context, result domain.SyncJobResult, syncedAt time.Time) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode sync result: %w", err)
	}
	tag, err := r.db.Exec(ctx, `
        WITH updated AS (
            UPDATE campaign_sets
            SET status = $2, last_synced_at = $3, updated_at = now()
            WHERE id = $1
            RETURNING id
        )
        INSERT INTO sync_results (campaign_set_id, result, synced_at)
        SELECT id, $4, $3 FROM updated`,
		result.SetID, string(result.SetStatus()), syncedAt, payload)
	if err != nil {
		return fmt.Errorf("record sync result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign set %s: %w", result.SetID, port.ErrEntityNotFound)
	}
	return nil
}

func tableFor(kind domain.EntityKind) (string, error) {
	switch kind {
	case domain.KindCampaign:
		return "campaigns", nil
	case domain.KindAdGroup:
		return "ad_groups", nil
	case domain.KindAd:
		return "ads", nil
	case domain.KindKeyword:
		return "keywords", nil
	default:
		return "", fmt.Errorf("unknown entity kind %q", kind)
	}
}
