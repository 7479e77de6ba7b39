package reservation

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"riraku-service/internal/app/config"
	"riraku-service/internal/app/contracts"
	"riraku-service/internal/pkg/constvars"
	"riraku-service/internal/pkg/exceptions"
	"riraku-service/internal/pkg/salon_dto"

	"github.com/goccy/go-json"
)

type reservationClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewReservationClient(internalConfig *config.InternalConfig) contracts.ReservationClient {
	return &reservationClient{
		baseURL: internalConfig.Upstream.ReservationBaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(internalConfig.Upstream.TimeoutSeconds) * time.Second,
		},
	}
}

func (c *reservationClient) CreateReservation(ctx context.Context, request *salon_dto.CreateReservationRequest) (*salon_dto.CreateReservationResult, error) {
	endpoint := fmt.Sprintf("%s/reservations", c.baseURL)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, exceptions.ErrUpstreamDetail(resp.StatusCode, decodeUpstreamDetail(resp))
	}

	var result salon_dto.CreateReservationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err)
	}
	return &result, nil
}

// decodeUpstreamDetail extracts a displayable message from a non-2xx body.
// The detail field may be a single string or a list; anything else falls back
// to a generic message so raw upstream payloads never reach the customer.
func decodeUpstreamDetail(resp *http.Response) string {
	var errorBody salon_dto.UpstreamErrorBody
	if err := json.NewDecoder(resp.Body).Decode(&errorBody); err != nil {
		return constvars.ErrClientReservationNotAccepted
	}

	switch detail := errorBody.Detail.(type) {
	case string:
		if detail != "" {
			return detail
		}
	case []any:
		var parts []string
		for _, item := range detail {
			if text, ok := item.(string); ok && text != "" {
				parts = append(parts, text)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	return constvars.ErrClientReservationNotAccepted
}
