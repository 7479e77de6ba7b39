package availability

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"riraku-service/internal/app/config"
	"riraku-service/internal/app/contracts"
	"riraku-service/internal/pkg/constvars"
	"riraku-service/internal/pkg/exceptions"
	"riraku-service/internal/pkg/salon_dto"
	"time"

	"github.com/goccy/go-json"
)

type availabilityClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAvailabilityClient(internalConfig *config.InternalConfig) contracts.AvailabilityClient {
	return &availabilityClient{
		baseURL: internalConfig.Upstream.AvailabilityBaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(internalConfig.Upstream.TimeoutSeconds) * time.Second,
		},
	}
}

func (c *availabilityClient) FindSlotsByStaffID(ctx context.Context, staffID string, from, to time.Time) ([]salon_dto.RawSlot, error) {
	endpoint := fmt.Sprintf("%s/staff/%s/slots", c.baseURL, url.PathEscape(staffID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	query := req.URL.Query()
	query.Set("from", from.Format(time.RFC3339))
	query.Set("to", to.Format(time.RFC3339))
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		// Unregistered staff: no slot list exists, which is not an error.
		return nil, nil
	}
	if resp.StatusCode != constvars.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, exceptions.ErrUpstreamDetail(resp.StatusCode, string(body))
	}

	var payload salon_dto.SlotListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err)
	}
	return payload.Slots, nil
}

func (c *availabilityClient) VerifySlot(ctx context.Context, staffID string, startAt time.Time) (*salon_dto.SlotVerification, error) {
	endpoint := fmt.Sprintf("%s/staff/%s/slots/verify", c.baseURL, url.PathEscape(staffID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	query := req.URL.Query()
	query.Set("start_at", startAt.Format(time.RFC3339))
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, exceptions.ErrUpstreamDetail(resp.StatusCode, string(body))
	}

	var verification salon_dto.SlotVerification
	if err := json.NewDecoder(resp.Body).Decode(&verification); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err)
	}
	return &verification, nil
}
