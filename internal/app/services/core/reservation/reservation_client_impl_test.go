package reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"riraku-service/internal/app/config"
	"riraku-service/internal/pkg/constvars"
	"riraku-service/internal/pkg/exceptions"
	"riraku-service/internal/pkg/salon_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *reservationClient {
	internalConfig := &config.InternalConfig{}
	internalConfig.Upstream.ReservationBaseURL = serverURL
	internalConfig.Upstream.TimeoutSeconds = 5
	return NewReservationClient(internalConfig).(*reservationClient)
}

func sampleRequest() *salon_dto.CreateReservationRequest {
	return &salon_dto.CreateReservationRequest{
		StaffID:        "staff-1",
		Customer:       salon_dto.CustomerContact{Name: "Sato Hanako", Phone: "09012345678"},
		DesiredStartAt: "2024-12-18T01:00:00Z",
		DesiredEndAt:   "2024-12-18T02:00:00Z",
		Channel:        constvars.ReservationChannelWeb,
	}
}

func TestCreateReservation(t *testing.T) {
	t.Run("decodes a confirmed result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/reservations", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"rsv-9","status":"confirmed"}`))
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).CreateReservation(context.Background(), sampleRequest())
		require.NoError(t, err)
		assert.Equal(t, "rsv-9", result.ID)
		assert.Equal(t, salon_dto.ReservationStatusConfirmed, result.Status)
	})

	t.Run("a rejected result is transport success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"rejected","reasons":["deadline_over"]}`))
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).CreateReservation(context.Background(), sampleRequest())
		require.NoError(t, err)
		assert.Equal(t, salon_dto.ReservationStatusRejected, result.Status)
		assert.Equal(t, []string{"deadline_over"}, result.Reasons)
	})

	t.Run("surfaces a string detail from a non-2xx body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"detail":"The selected course is no longer offered"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).CreateReservation(context.Background(), sampleRequest())
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Equal(t, "The selected course is no longer offered", customErr.ClientMessage)
	})

	t.Run("joins a list detail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":["name is required","phone is invalid"]}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).CreateReservation(context.Background(), sampleRequest())
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, "name is required, phone is invalid", customErr.ClientMessage)
	})

	t.Run("an undecodable error body falls back to the generic message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`<html>gateway error</html>`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).CreateReservation(context.Background(), sampleRequest())
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientReservationNotAccepted, customErr.ClientMessage)
	})

	t.Run("a connection failure maps to the transport error", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:1")

		_, err := client.CreateReservation(context.Background(), sampleRequest())
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})
}
