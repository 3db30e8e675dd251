package teacher

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/sciencegrader/internal/dto"
	"github.com/lshigami/sciencegrader/internal/service"
	"github.com/rs/zerolog/log"
)

const exportFilename = "student_submissions.csv"

type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(ds service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: ds}
}

func (c *DashboardController) RegisterRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	teacher := rg.Group("/teacher", guard)
	{
		teacher.GET("/submissions", c.ListSubmissions)
		teacher.GET("/submissions/export", c.ExportCSV)
		teacher.GET("/stats", c.GetStats)
		teacher.GET("/students", c.ListStudents)
		teacher.GET("/students/:student_id/history", c.GetStudentHistory)
	}
}

func bindDashboardQuery(ctx *gin.Context) (dto.DashboardQuery, bool) {
	var q dto.DashboardQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid query parameters", Details: []string{err.Error()}})
		return q, false
	}
	return q, true
}

func respondError(ctx *gin.Context, op string, err error) {
	if service.IsValidationError(err) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	log.Error().Err(err).Msgf("Teacher %s: Service error", op)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load submissions", Details: []string{err.Error()}})
}

// ListSubmissions godoc
// @Summary (Teacher) List submissions
// @Description Stored submissions newest first, filtered by student ID substring and a recent-days window (0 = all).
// @Tags Teacher - Dashboard
// @Produce json
// @Security TeacherPassword
// @Param student_id query string false "Case-insensitive student ID substring"
// @Param days query int false "Only the last N days, 0..365" default(30)
// @Success 200 {array} dto.SubmissionRowDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Failure 401 {object} dto.ErrorResponse "Wrong teacher password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/submissions [get]
func (c *DashboardController) ListSubmissions(ctx *gin.Context) {
	q, ok := bindDashboardQuery(ctx)
	if !ok {
		return
	}
	rows, err := c.dashboardService.ListSubmissions(ctx.Request.Context(), q)
	if err != nil {
		respondError(ctx, "ListSubmissions", err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// GetStats godoc
// @Summary (Teacher) Dashboard metrics
// @Description Submission count, distinct students, latest submission time and per-question correct rate for the filtered set.
// @Tags Teacher - Dashboard
// @Produce json
// @Security TeacherPassword
// @Param student_id query string false "Case-insensitive student ID substring"
// @Param days query int false "Only the last N days, 0..365" default(30)
// @Success 200 {object} grading.AggregateStats
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Failure 401 {object} dto.ErrorResponse "Wrong teacher password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/stats [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	q, ok := bindDashboardQuery(ctx)
	if !ok {
		return
	}
	stats, err := c.dashboardService.Stats(ctx.Request.Context(), q)
	if err != nil {
		respondError(ctx, "GetStats", err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// ExportCSV godoc
// @Summary (Teacher) Download submissions as CSV
// @Description UTF-8 CSV with BOM of the filtered submissions.
// @Tags Teacher - Dashboard
// @Produce text/csv
// @Security TeacherPassword
// @Param student_id query string false "Case-insensitive student ID substring"
// @Param days query int false "Only the last N days, 0..365" default(30)
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Failure 401 {object} dto.ErrorResponse "Wrong teacher password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/submissions/export [get]
func (c *DashboardController) ExportCSV(ctx *gin.Context) {
	q, ok := bindDashboardQuery(ctx)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := c.dashboardService.ExportCSV(ctx.Request.Context(), q, &buf); err != nil {
		respondError(ctx, "ExportCSV", err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ListStudents godoc
// @Summary (Teacher) Student IDs in the filtered set
// @Tags Teacher - Dashboard
// @Produce json
// @Security TeacherPassword
// @Param student_id query string false "Case-insensitive student ID substring"
// @Param days query int false "Only the last N days, 0..365" default(30)
// @Success 200 {object} dto.StudentListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Failure 401 {object} dto.ErrorResponse "Wrong teacher password"
// @Router /teacher/students [get]
func (c *DashboardController) ListStudents(ctx *gin.Context) {
	q, ok := bindDashboardQuery(ctx)
	if !ok {
		return
	}
	ids, err := c.dashboardService.Students(ctx.Request.Context(), q)
	if err != nil {
		respondError(ctx, "ListStudents", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StudentListResponse{StudentIDs: ids})
}

// GetStudentHistory godoc
// @Summary (Teacher) One student's submissions
// @Description Exact student ID match, newest first.
// @Tags Teacher - Dashboard
// @Produce json
// @Security TeacherPassword
// @Param student_id path string true "Student ID"
// @Param limit query int false "Maximum rows, 1..200" default(200)
// @Success 200 {array} dto.SubmissionRowDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 401 {object} dto.ErrorResponse "Wrong teacher password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/students/{student_id}/history [get]
func (c *DashboardController) GetStudentHistory(ctx *gin.Context) {
	var q dto.HistoryQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid query parameters", Details: []string{err.Error()}})
		return
	}
	rows, err := c.dashboardService.History(ctx.Request.Context(), ctx.Param("student_id"), q.Limit)
	if err != nil {
		respondError(ctx, "GetStudentHistory", err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}
