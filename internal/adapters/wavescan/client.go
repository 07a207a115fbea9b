package wavescan

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetMatchCheck: GET /api/v1/match/{matchID}/check
func (c *Client) GetMatchCheck(ctx context.Context, matchID string) (*MatchCheck, error) {
	var dto MatchCheck
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/v1/match/%s/check", url.PathEscape(matchID)), &dto)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}
