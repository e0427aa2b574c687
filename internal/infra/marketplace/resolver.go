// Package marketplace resolves group reward links against the marketplace
// asset registry.
package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pindrop/config"
	"pindrop/internal/domain/entity"
	"pindrop/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 15 * time.Second

// resolver implements service.RewardResolver over the marketplace HTTP API.
type resolver struct {
	baseURL    string
	httpClient *http.Client
}

// NewResolver is the constructor for resolver.
func NewResolver(cfg *config.Config) (service.RewardResolver, error) {
	if cfg.Claim == nil || cfg.Claim.MarketplaceURL == "" {
		return nil, errors.New("marketplace url must be provided")
	}

	return &resolver{
		baseURL: strings.TrimRight(cfg.Claim.MarketplaceURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// assetResponse mirrors the marketplace asset resource.
type assetResponse struct {
	Code   string `json:"code"`
	Issuer string `json:"issuer"`
}

// ResolveReward resolves the asset a group pays out. A direct asset link wins
// over a page asset code; a group with neither reports ErrNoLinkedReward.
func (r *resolver) ResolveReward(ctx context.Context, group *entity.LocationGroup) (*entity.Asset, error) {
	switch {
	case group.AssetID != nil:
		return r.fetchAsset(ctx, "/assets/"+url.PathEscape(group.AssetID.String()))
	case group.PageAssetCode != nil && *group.PageAssetCode != "":
		return r.fetchAsset(ctx, "/assets/code/"+url.PathEscape(*group.PageAssetCode))
	default:
		return nil, service.ErrNoLinkedReward
	}
}

func (r *resolver) fetchAsset(ctx context.Context, path string) (*entity.Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "marketplace request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, service.ErrNoLinkedReward
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("marketplace returned non-success status %d", resp.StatusCode)
	}

	var body assetResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode marketplace asset")
	}
	if body.Code == "" || body.Issuer == "" {
		return nil, service.ErrNoLinkedReward
	}

	return &entity.Asset{
		Code:   body.Code,
		Issuer: body.Issuer,
	}, nil
}
