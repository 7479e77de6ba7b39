package availability

import (
	"context"
	"net/http"
	"riraku-service/internal/app/config"
	"riraku-service/internal/app/services/core/calendar"
	"riraku-service/internal/pkg/civiltime"
	"riraku-service/internal/pkg/constvars"
	"riraku-service/internal/pkg/dto/responses"
	"riraku-service/internal/pkg/exceptions"
	"riraku-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase AvailabilityUsecase
	Clock               civiltime.Clock
	InternalConfig      *config.InternalConfig
}

func NewAvailabilityController(
	logger *zap.Logger,
	availabilityUsecase AvailabilityUsecase,
	clock civiltime.Clock,
	internalConfig *config.InternalConfig,
) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
		Clock:               clock,
		InternalConfig:      internalConfig,
	}
}

// WeekView renders the seven-day grid for one staff member. The week starts
// at the "start" query date, defaulting to today in the fixed civil timezone.
func (ctrl *AvailabilityController) WeekView(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	staffID := chi.URLParam(r, "staffID")
	weekStart := r.URL.Query().Get("start")
	if weekStart == "" {
		weekStart = civiltime.ToCivilDate(ctrl.Clock.Now())
	}
	if _, err := civiltime.CivilMidnight(weekStart); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseTime(err))
		return
	}

	cal, err := ctrl.AvailabilityUsecase.WeekCalendar(ctx, staffID, weekStart)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	timeline := calendar.BuildTimeline(
		ctrl.InternalConfig.App.TimelineOpenHour,
		ctrl.InternalConfig.App.TimelineCloseHour,
		ctrl.InternalConfig.App.TimelineStepMinutes,
	)
	grid, err := calendar.NewGrid(cal, weekStart, calendar.Config{
		Timeline:     timeline,
		MaxSelection: ctrl.InternalConfig.App.MaxSelection,
	})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerProcess(err))
		return
	}

	view := ctrl.buildWeekView(staffID, weekStart, grid)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, view)
}

func (ctrl *AvailabilityController) buildWeekView(staffID, weekStart string, grid *calendar.Grid) responses.WeekView {
	today := civiltime.ToCivilDate(ctrl.Clock.Now())

	view := responses.WeekView{
		StaffID:      staffID,
		WeekStart:    weekStart,
		Days:         grid.Days(),
		Timeline:     grid.Timeline(),
		SourceType:   string(grid.Source()),
		Layout:       string(grid.Layout()),
		Unregistered: grid.Unregistered(),
	}

	for _, timeKey := range grid.Timeline() {
		row := responses.GridRow{TimeKey: timeKey, Cells: make([]responses.GridCell, 0, len(grid.Days()))}
		for _, date := range grid.Days() {
			cell := responses.GridCell{
				Date:    date,
				State:   string(grid.CellState(date, timeKey)),
				IsToday: date == today,
			}
			if slot, ok := grid.Slot(date, timeKey); ok {
				cell.StartAt = slot.Start.Format(time.RFC3339)
				cell.EndAt = slot.End.Format(time.RFC3339)
			}
			row.Cells = append(row.Cells, cell)
		}
		view.Rows = append(view.Rows, row)
	}

	return view
}
