package reservation

import (
	"context"
	"net/http"
	"time"

	"riraku-service/internal/pkg/constvars"
	"riraku-service/internal/pkg/dto/requests"
	"riraku-service/internal/pkg/dto/responses"
	"riraku-service/internal/pkg/exceptions"
	"riraku-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReservationController struct {
	Log                *zap.Logger
	ReservationUsecase ReservationUsecase
}

func NewReservationController(logger *zap.Logger, reservationUsecase ReservationUsecase) *ReservationController {
	return &ReservationController{
		Log:                logger,
		ReservationUsecase: reservationUsecase,
	}
}

// CreateReservation accepts the storefront submit and runs the full
// pipeline. Validation failures come back with every failing field at once;
// a successful response carries the shareable summary text.
func (ctrl *ReservationController) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	staffID := chi.URLParam(r, "staffID")

	var payload requests.CreateReservation
	if err := utils.DecodeJSONBody(r, &payload); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	outcome, err := ctrl.ReservationUsecase.Submit(ctx, staffID, &payload)
	if outcome == nil && err == nil {
		// A submission for this staff target is already in flight.
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CreateReservationSuccessMessage, responses.ReservationSubmission{
			Status:  outcomeStatusInProgress,
			Message: "A submission is already in progress",
		})
		return
	}
	if err != nil {
		if outcome != nil && len(outcome.FieldErrors) > 0 {
			ctrl.writeFieldErrors(w, outcome, err)
			return
		}
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	_, submittedAt := ctrl.ReservationUsecase.LastSuccess(staffID)
	submission := responses.ReservationSubmission{
		ReservationID: outcome.ReservationID,
		Status:        outcome.Status,
		Message:       outcome.Message,
		SubmittedAt:   submittedAt.UTC().Format(time.RFC3339),
		Summary:       ctrl.ReservationUsecase.Summary(staffID),
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateReservationSuccessMessage, submission)
}

// Summary hands back the latest confirmed submission as shareable text so
// the storefront can offer a copy button.
func (ctrl *ReservationController) Summary(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	submission := responses.ReservationSubmission{
		Status:  outcomeStatusConfirmed,
		Summary: ctrl.ReservationUsecase.Summary(staffID),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CreateReservationSuccessMessage, submission)
}

// writeFieldErrors renders a validation failure with the complete field map
// in the payload, logging through the standard error path first.
func (ctrl *ReservationController) writeFieldErrors(w http.ResponseWriter, outcome *SubmitOutcome, err error) {
	var customErr *exceptions.CustomError
	code := constvars.StatusBadRequest
	if ce, ok := err.(*exceptions.CustomError); ok {
		customErr = ce
		code = ce.StatusCode
	}
	if customErr != nil {
		ctrl.Log.Info(customErr.DevMessage, zap.Any("field_errors", outcome.FieldErrors))
	}

	response := responses.ResponseDTO{
		Success: false,
		Message: constvars.ErrClientCannotProcessRequest,
		Data: responses.ReservationSubmission{
			Status:      outcome.Status,
			FieldErrors: outcome.FieldErrors,
		},
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}
