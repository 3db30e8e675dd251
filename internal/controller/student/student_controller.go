package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/sciencegrader/internal/dto"
	"github.com/lshigami/sciencegrader/internal/service"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	questionService service.QuestionService
	gradingService  service.GradingService
}

func NewStudentController(qs service.QuestionService, gs service.GradingService) *StudentController {
	return &StudentController{questionService: qs, gradingService: gs}
}

// RegisterRoutes mounts the student endpoints. submitLimit guards only the grading call.
func (c *StudentController) RegisterRoutes(rg *gin.RouterGroup, submitLimit gin.HandlerFunc) {
	rg.GET("/questions", c.GetQuestions)
	rg.POST("/submissions", submitLimit, c.SubmitAnswers)
}

// GetQuestions godoc
// @Summary (Student) Get the question set
// @Description Class title and the essay questions shown on the answer form. Rubrics are not included.
// @Tags Student
// @Produce json
// @Success 200 {object} dto.QuestionSetResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [get]
func (c *StudentController) GetQuestions(ctx *gin.Context) {
	questions, err := c.questionService.GetQuestionSet()
	if err != nil {
		log.Error().Err(err).Msg("Student GetQuestions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// SubmitAnswers godoc
// @Summary (Student) Submit answers for grading
// @Description Grades every answer with the LLM, stores the submission and returns one O/X feedback line per question.
// @Description A storage failure still returns the graded result with saved=false.
// @Tags Student
// @Accept json
// @Produce json
// @Param submission body dto.SubmissionRequest true "Student ID and one answer per question"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Blank student ID, blank answer or answers not matching the questions"
// @Failure 429 {object} dto.ErrorResponse "Too many submissions from this client"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submissions [post]
func (c *StudentController) SubmitAnswers(ctx *gin.Context) {
	var req dto.SubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Student SubmitAnswers: Failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid submission data", Details: []string{err.Error()}})
		return
	}

	result, err := c.gradingService.Grade(ctx.Request.Context(), req)
	if err != nil {
		if service.IsValidationError(err) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("studentID", req.StudentID).Msg("Student SubmitAnswers: Grading failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to grade submission", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, toSubmissionResponse(result))
}

func toSubmissionResponse(result service.GradingResult) dto.SubmissionResponse {
	sub := result.Submission
	resp := dto.SubmissionResponse{
		StudentID: sub.StudentID,
		Model:     sub.Model,
		CreatedAt: sub.CreatedAt,
		Saved:     result.Saved,
		Notice:    result.Notice,
		Results:   make([]dto.AnswerResultDTO, 0, len(sub.Answers)),
	}
	for _, a := range sub.Answers {
		resp.Results = append(resp.Results, dto.AnswerResultDTO{
			QuestionIndex: a.QuestionIndex,
			Answer:        a.Answer,
			Verdict:       string(a.Feedback.Verdict),
			Feedback:      a.Feedback.Rationale,
		})
	}
	return resp
}
