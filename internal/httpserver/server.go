package httpserver

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Kunnanan/Assessli-verse/internal/interview"
)

// Server bundles the HTTP router and the interview engine.
type Server struct {
	Router http.Handler

	engine *interview.Engine
}

// New constructs the HTTP server with routes.
func New(engine *interview.Engine) *Server {
	s := &Server{engine: engine}

	e := newRouter()
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.POST("/start-interview/:role", s.startInterview)
	e.POST("/process-answer/:id", s.processAnswer)

	s.Router = e
	return s
}

func (s *Server) startInterview(c echo.Context) error {
	role := c.Param("role")

	id, audio, contentType, err := s.engine.Start(c.Request().Context(), role)
	if err != nil {
		c.Logger().Errorf("start interview failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "An internal server error occurred."})
	}

	c.Response().Header().Set(conversationIDHeader, id)
	return c.Blob(http.StatusOK, contentType, audio)
}

func (s *Server) processAnswer(c echo.Context) error {
	id := c.Param("id")

	audio, err := readAnswerAudio(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Could not read answer audio."})
	}

	outcome, err := s.engine.SubmitAnswer(c.Request().Context(), id, audio)
	if err != nil {
		if errors.Is(err, interview.ErrUnknownSession) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Error: Conversation ID not found."})
		}
		c.Logger().Errorf("process answer failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "An internal server error occurred."})
	}

	if outcome.Finished {
		return c.String(http.StatusOK, outcome.Report)
	}
	return c.Blob(http.StatusOK, outcome.AudioContentType, outcome.Audio)
}

// readAnswerAudio accepts either a multipart upload (field "audio_file") or
// raw audio bytes in the request body.
func readAnswerAudio(c echo.Context) ([]byte, error) {
	if fh, err := c.FormFile("audio_file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return io.ReadAll(c.Request().Body)
}
