package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"enerscout/internal/chat"
	"enerscout/internal/session"
)

// ChatInput is one user message.
type ChatInput struct {
	Message string `json:"message" example:"What's the solar potential in Phoenix?"`
}

// ChatResponse returns the assistant reply together with the full transcript
// and the (possibly updated) assessment state.
type ChatResponse struct {
	Reply      chat.Message     `json:"reply"`
	Messages   []chat.Message   `json:"messages"`
	Assessment session.Snapshot `json:"assessment"`
}

// TranscriptResponse is the transcript in append order.
type TranscriptResponse struct {
	Messages []chat.Message `json:"messages"`
}

// handleSendChat godoc
// @Summary Send a chat message
// @Description Run one chat send cycle. When the assistant's reply embeds a solar and wind payload, both assessment slots are updated atomically. A backend failure degrades to a fixed assistant notice and still returns 200.
// @Tags chat
// @Accept json
// @Produce json
// @Param input body ChatInput true "User message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/chat [post]
func (app *App) handleSendChat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := app.sessionForRequest(c)

	reply, err := app.chat.Send(c.Request.Context(), sess, input.Message)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, chat.ErrSendInProgress) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("chat send failed", "session_id", sess.SessionID(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Reply:      reply,
		Messages:   sess.Transcript().Messages(),
		Assessment: sess.Snapshot(),
	})
}

// handleGetTranscript godoc
// @Summary Chat transcript
// @Description Return the session's messages in append order.
// @Tags chat
// @Produce json
// @Success 200 {object} TranscriptResponse
// @Router /api/chat [get]
func (app *App) handleGetTranscript(c *gin.Context) {
	sess := app.sessionForRequest(c)
	c.JSON(http.StatusOK, TranscriptResponse{
		Messages: sess.Transcript().Messages(),
	})
}
