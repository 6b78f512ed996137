package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"timecapsule/internal/domain"
	"timecapsule/internal/services/custody"
)

// HTTPClient talks to a remote key server.
type HTTPClient struct {
	Base  string
	HTTP  *http.Client
	Clock domain.Clock
}

// NewHTTP returns a client for base. A nil httpClient selects http.DefaultClient.
func NewHTTP(base string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{Base: strings.TrimRight(base, "/"), HTTP: httpClient, Clock: domain.SystemClock{}}
}

// Deposit hands the server share to the key server.
func (c *HTTPClient) Deposit(
	ctx context.Context,
	id domain.LetterID,
	share domain.Share,
	unlockAt time.Time,
) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(depositRequest{LetterID: id, Share: share, UnlockAt: unlockAt.UTC()}); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/shares", buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusConflict:
		return domain.ErrShareExists
	case resp.StatusCode/100 != 2:
		return fmt.Errorf("relay post /shares: %s", resp.Status)
	}
	return nil
}

// Release fetches the server share once the key server allows it.
func (c *HTTPClient) Release(ctx context.Context, id domain.LetterID) (domain.Share, error) {
	path := "/shares/" + url.PathEscape(id.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", domain.ErrLetterNotFound
	case resp.StatusCode == http.StatusLocked:
		return "", c.sealedError(resp.Header.Get("Retry-After"))
	case resp.StatusCode/100 != 2:
		return "", fmt.Errorf("relay get %s: %s", path, resp.Status)
	}
	var out releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Share, nil
}

// sealedError rebuilds the custodian's SealedError from a Retry-After
// value in seconds. Without a usable value only the sentinel is returned.
func (c *HTTPClient) sealedError(retryAfter string) error {
	secs, err := strconv.Atoi(retryAfter)
	if err != nil || secs <= 0 {
		return domain.ErrStillSealed
	}
	clock := c.Clock
	if clock == nil {
		clock = domain.SystemClock{}
	}
	remaining := time.Duration(secs) * time.Second
	return &custody.SealedError{UnlockAt: clock.Now().Add(remaining), Remaining: remaining}
}

var _ domain.ShareCustodian = (*HTTPClient)(nil)
