package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-sync/internal/core/domain"
)

// Demo identifiers are derived from fixed names so seeding is repeatable.
var (
	DemoUserID      = demoID("user")
	DemoAdAccountID = demoID("ad-account")
	DemoSetID       = demoID("campaign-set")
)

func demoID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("campaign-sync/demo/"+name))
}

// DemoAdAccount returns the demo ad account owned by DemoUserID.
func DemoAdAccount(remoteAccountID string) domain.AdAccount {
	return domain.AdAccount{
		ID:              DemoAdAccountID,
		UserID:          DemoUserID,
		Platform:        domain.PlatformReddit,
		RemoteAccountID: remoteAccountID,
		Name:            "Demo account",
	}
}

// DemoCampaignSet returns a draft campaign set with two campaigns, each with
// two ad groups holding one ad and three keywords.
func DemoCampaignSet() *domain.CampaignSet {
	set := &domain.CampaignSet{
		ID:      DemoSetID,
		OwnerID: DemoUserID,
		Config: domain.CampaignSetConfig{
			Platform:         domain.PlatformReddit,
			AdAccountID:      DemoAdAccountID,
			FallbackStrategy: "truncate",
		},
		Status: domain.CampaignSetDraft,
	}
	for i := 1; i <= 2; i++ {
		c := &domain.Campaign{
			ID:            demoID(fmt.Sprintf("campaign-%d", i)),
			CampaignSetID: set.ID,
			Name:          fmt.Sprintf("Demo campaign %d", i),
			Platform:      domain.PlatformReddit,
			SyncStatus:    domain.SyncStatusPending,
		}
		for j := 1; j <= 2; j++ {
			g := &domain.AdGroup{
				ID:         demoID(fmt.Sprintf("campaign-%d/group-%d", i, j)),
				CampaignID: c.ID,
				Name:       fmt.Sprintf("Demo group %d.%d", i, j),
				SyncStatus: domain.SyncStatusPending,
			}
			g.Ads = append(g.Ads, &domain.Ad{
				ID:          demoID(fmt.Sprintf("campaign-%d/group-%d/ad", i, j)),
				AdGroupID:   g.ID,
				Headline:    fmt.Sprintf("Demo headline %d.%d", i, j),
				Description: "Seeded by campaign-sync",
				DisplayURL:  "example.com",
				FinalURL:    fmt.Sprintf("https://example.com/landing/%d/%d", i, j),
				SyncStatus:  domain.SyncStatusPending,
			})
			for k, mt := range []domain.MatchType{domain.MatchExact, domain.MatchPhrase, domain.MatchBroad} {
				g.Keywords = append(g.Keywords, &domain.Keyword{
					ID:         demoID(fmt.Sprintf("campaign-%d/group-%d/keyword-%d", i, j, k)),
					AdGroupID:  g.ID,
					Text:       fmt.Sprintf("demo keyword %d", j),
					MatchType:  mt,
					SyncStatus: domain.SyncStatusPending,
				})
			}
			c.AdGroups = append(c.AdGroups, g)
		}
		set.Campaigns = append(set.Campaigns, c)
	}
	return set
}

// Seed inserts the demo ad account and DemoCampaignSet. Rows that already
// exist are left untouched, so stored remote ids survive restarts. When
// accessToken is set, a credential valid for one day is stored for the
// account.
func Seed(ctx context.Context, db *pgxpool.Pool, remoteAccountID, accessToken string) error {
	acct := DemoAdAccount(remoteAccountID)
	_, err := db.Exec(ctx, `INSERT INTO ad_accounts (id, user_id, platform, remote_account_id, name)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
		acct.ID, acct.UserID, string(acct.Platform), acct.RemoteAccountID, acct.Name)
	if err != nil {
		return fmt.Errorf("seed ad account: %w", err)
	}

	if accessToken != "" {
		_, err = db.Exec(ctx, `INSERT INTO ad_account_credentials (ad_account_id, access_token, expires_at)
VALUES ($1,$2,$3)
ON CONFLICT (ad_account_id) DO UPDATE SET access_token = EXCLUDED.access_token,
    expires_at = EXCLUDED.expires_at, updated_at = now()`,
			acct.ID, accessToken, time.Now().Add(24*time.Hour))
		if err != nil {
			return fmt.Errorf("seed credential: %w", err)
		}
	}

	set := DemoCampaignSet()
	_, err = db.Exec(ctx, `INSERT INTO campaign_sets (id, owner_id, platform, ad_account_id, fallback_strategy)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
		set.ID, set.OwnerID, string(set.Config.Platform), set.Config.AdAccountID, set.Config.FallbackStrategy)
	if err != nil {
		return fmt.Errorf("seed campaign set: %w", err)
	}

	for i, c := range set.Campaigns {
		_, err = db.Exec(ctx, `INSERT INTO campaigns (id, campaign_set_id, position, name, platform)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
			c.ID, set.ID, i+1, c.Name, string(c.Platform))
		if err != nil {
			return fmt.Errorf("seed campaign: %w", err)
		}

		for j, g := range c.AdGroups {
			_, err = db.Exec(ctx, `INSERT INTO ad_groups (id, campaign_id, position, name)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
				g.ID, c.ID, j+1, g.Name)
			if err != nil {
				return fmt.Errorf("seed ad group: %w", err)
			}

			for k, a := range g.Ads {
				_, err = db.Exec(ctx, `INSERT INTO ads (id, ad_group_id, position, headline, description, display_url, final_url)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
					a.ID, g.ID, k+1, a.Headline, a.Description, a.DisplayURL, a.FinalURL)
				if err != nil {
					return fmt.Errorf("seed ad: %w", err)
				}
			}

			for k, kw := range g.Keywords {
				_, err = db.Exec(ctx, `INSERT INTO keywords (id, ad_group_id, position, text, match_type)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
					kw.ID, g.ID, k+1, kw.Text, string(kw.MatchType))
				if err != nil {
					return fmt.Errorf("seed keyword: %w", err)
				}
			}
		}
	}
	return nil
}
