package reddit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

const (
	// statusPaused is the configured status for newly created entities;
	// activation happens outside the sync.
	statusPaused = "PAUSED"

	defaultMaxPages = 50
)

var errPageLimit = errors.New("pagination limit reached")

// Adapter talks to a Reddit-style ads API on behalf of one ad account.
type Adapter struct {
	c                   *client
	accountID           string
	fundingInstrumentID string
	maxPages            int
}

var (
	_ port.PlatformAdapter      = (*Adapter)(nil)
	_ port.ExistingEntityFinder = (*Adapter)(nil)
)

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformReddit
}

func (a *Adapter) CreateCampaign(ctx context.Context, c *domain.Campaign, accountRemoteID string) domain.MutationResult {
	body := campaignPayload{
		Name:                c.Name,
		FundingInstrumentID: a.fundingInstrumentID,
		ConfiguredStatus:    statusPaused,
	}
	return a.create(ctx, accountPath(accountRemoteID, "campaigns"), body)
}

func (a *Adapter) UpdateCampaign(ctx context.Context, c *domain.Campaign, remoteID string) domain.MutationResult {
	return a.update(ctx, entityPath("campaigns", remoteID), campaignPayload{Name: c.Name}, remoteID)
}

func (a *Adapter) CreateAdGroup(ctx context.Context, g *domain.AdGroup, campaignRemoteID string) domain.MutationResult {
	body := adGroupPayload{
		CampaignID:       campaignRemoteID,
		Name:             g.Name,
		ConfiguredStatus: statusPaused,
	}
	return a.create(ctx, accountPath(a.accountID, "ad_groups"), body)
}

func (a *Adapter) UpdateAdGroup(ctx context.Context, g *domain.AdGroup, remoteID string) domain.MutationResult {
	return a.update(ctx, entityPath("ad_groups", remoteID), adGroupPayload{Name: g.Name}, remoteID)
}

func (a *Adapter) CreateAd(ctx context.Context, ad *domain.Ad, adGroupRemoteID string) domain.MutationResult {
	body := toAdPayload(ad)
	body.AdGroupID = adGroupRemoteID
	body.ConfiguredStatus = statusPaused
	return a.create(ctx, accountPath(a.accountID, "ads"), body)
}

func (a *Adapter) UpdateAd(ctx context.Context, ad *domain.Ad, remoteID string) domain.MutationResult {
	return a.update(ctx, entityPath("ads", remoteID), toAdPayload(ad), remoteID)
}

func (a *Adapter) CreateKeyword(ctx context.Context, k *domain.Keyword, adGroupRemoteID string) domain.MutationResult {
	body := keywordPayload{
		AdGroupID: adGroupRemoteID,
		Text:      k.Text,
		MatchType: wireMatchType(k.MatchType),
	}
	return a.create(ctx, accountPath(a.accountID, "keywords"), body)
}

func (a *Adapter) UpdateKeyword(ctx context.Context, k *domain.Keyword, remoteID string) domain.MutationResult {
	body := keywordPayload{Text: k.Text, MatchType: wireMatchType(k.MatchType)}
	return a.update(ctx, entityPath("keywords", remoteID), body, remoteID)
}

func (a *Adapter) FindCampaign(ctx context.Context, accountRemoteID, name string) (string, bool, error) {
	return findFirst(ctx, a, accountPath(accountRemoteID, "campaigns"), func(p campaignPayload) bool {
		return p.Name == name
	}, func(p campaignPayload) string { return p.ID })
}

func (a *Adapter) FindAdGroup(ctx context.Context, campaignRemoteID, name string) (string, bool, error) {
	path := withQuery(accountPath(a.accountID, "ad_groups"), "campaign_id", campaignRemoteID)
	return findFirst(ctx, a, path, func(p adGroupPayload) bool {
		return p.CampaignID == campaignRemoteID && p.Name == name
	}, func(p adGroupPayload) string { return p.ID })
}

func (a *Adapter) FindAd(ctx context.Context, adGroupRemoteID, headline string) (string, bool, error) {
	path := withQuery(accountPath(a.accountID, "ads"), "ad_group_id", adGroupRemoteID)
	return findFirst(ctx, a, path, func(p adPayload) bool {
		return p.AdGroupID == adGroupRemoteID && p.Headline == headline
	}, func(p adPayload) string { return p.ID })
}

func (a *Adapter) FindKeyword(ctx context.Context, adGroupRemoteID string, key domain.KeywordKey) (string, bool, error) {
	path := withQuery(accountPath(a.accountID, "keywords"), "ad_group_id", adGroupRemoteID)
	return findFirst(ctx, a, path, func(p keywordPayload) bool {
		return p.AdGroupID == adGroupRemoteID &&
			domain.NewKeywordKey(p.Text, domain.MatchType(p.MatchType)) == key
	}, func(p keywordPayload) string { return p.ID })
}

func (a *Adapter) create(ctx context.Context, path string, body any) domain.MutationResult {
	var out envelope[remoteRef]
	if err := a.c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return domain.Failed(classify(err))
	}
	if out.Data.ID == "" {
		return domain.Failed(&domain.PlatformError{
			Code:    "invalid_response",
			Message: "created entity has no id",
		})
	}
	return domain.Succeeded(out.Data.ID)
}

func (a *Adapter) update(ctx context.Context, path string, body any, remoteID string) domain.MutationResult {
	var out envelope[remoteRef]
	if err := a.c.do(ctx, http.MethodPatch, path, body, &out); err != nil {
		return domain.Failed(classify(err))
	}
	// Updates keep the entity's identity; an echoed id is informational.
	if out.Data.ID != "" {
		return domain.Succeeded(out.Data.ID)
	}
	return domain.Succeeded(remoteID)
}

// findFirst walks a paginated list endpoint and returns the id of the
// first item matching match.
func findFirst[T any](
	ctx context.Context,
	a *Adapter,
	path string,
	match func(T) bool,
	id func(T) string,
) (string, bool, error) {
	next := path
	for page := 0; next != ""; page++ {
		if page >= a.maxPages {
			return "", false, fmt.Errorf("list %s: %w", path, errPageLimit)
		}

		var out listEnvelope[T]
		if err := a.c.do(ctx, http.MethodGet, next, nil, &out); err != nil {
			return "", false, fmt.Errorf("list %s: %w", path, err)
		}
		for _, item := range out.Data {
			if match(item) {
				return id(item), true, nil
			}
		}
		next = out.Pagination.NextURL
	}
	return "", false, nil
}

func toAdPayload(ad *domain.Ad) adPayload {
	return adPayload{
		Name:       ad.Headline,
		Headline:   ad.Headline,
		Body:       ad.Description,
		DisplayURL: ad.DisplayURL,
		ClickURL:   ad.FinalURL,
	}
}

func wireMatchType(m domain.MatchType) string {
	return strings.ToUpper(string(m))
}

func accountPath(accountID, collection string) string {
	return "/ad_accounts/" + url.PathEscape(accountID) + "/" + collection
}

func entityPath(collection, id string) string {
	return "/" + collection + "/" + url.PathEscape(id)
}

func withQuery(path, key, value string) string {
	return path + "?" + url.Values{key: {value}}.Encode()
}

