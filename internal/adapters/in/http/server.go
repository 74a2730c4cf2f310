package http

import (
	"context"
	"net/http"

	"orderchat/internal/core/application/interpreter"

	"github.com/labstack/echo/v4"
)

// CommandRequest is the body of POST /api/v1/commands: one free-form utterance
// attributed to one user.
type CommandRequest struct {
	Text   string `json:"text"`
	UserID string `json:"userId"`
}

// Submitter is the inbound seam: one utterance in, one interpreted result out.
type Submitter interface {
	Submit(ctx context.Context, text, userID string) (interpreter.Result, error)
}

// Server handles the conversational HTTP surface. Every order operation goes
// through the single commands endpoint; the interpreter decides what the text
// means.
type Server struct {
	interpreter Submitter
}

// NewServer creates a new HTTP server around the command interpreter.
func NewServer(interp Submitter) *Server {
	return &Server{interpreter: interp}
}

// RegisterRoutes binds the server's routes onto the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/commands", s.SubmitCommand)
	e.GET("/health", s.Health)
}

// SubmitCommand handles POST /api/v1/commands - interprets one utterance.
//
// Clarifications and unknown order ids are ordinary 200 results with the
// matching action; only unexpected failures produce a 500, with a generic
// reply and the raw error alongside.
func (s *Server) SubmitCommand(ctx echo.Context) error {
	var req CommandRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, interpreter.Result{
			Reply:  "Invalid request body.",
			Action: interpreter.ActionFallback,
			Err:    err.Error(),
		})
	}

	if req.Text == "" {
		return ctx.JSON(http.StatusBadRequest, interpreter.Result{
			Reply:  "Please tell me what you'd like to do.",
			Action: interpreter.ActionFallback,
		})
	}

	result, err := s.interpreter.Submit(ctx.Request().Context(), req.Text, req.UserID)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, interpreter.Result{
			Reply:  "Something went wrong while processing your request.",
			Action: interpreter.ActionFallback,
			Err:    err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, result)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
