package network

import (
	"context"
	"encoding/json"
	"fmt"

	fhttp "github.com/bogdanfinn/fhttp"
)

// GetJSON issues a GET to target and decodes the response body into v.
// Responses with status >= 400 are reported as ErrRequestFailed.
func GetJSON(ctx context.Context, doer Doer, target string, v any) error {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")

	resp, err := doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: http %d", ErrRequestFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", target, err)
	}
	return nil
}
