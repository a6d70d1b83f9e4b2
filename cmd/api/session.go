package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"enerscout/internal/session"
)

const sessionCookie = "enerscout_session"

// sessionForRequest returns the caller's session, creating one and issuing a
// browser-session cookie on first contact. An unknown or malformed cookie
// (e.g. after a restart, since sessions are memory only) gets a fresh
// session the same way.
func (app *App) sessionForRequest(c *gin.Context) *session.Session {
	if raw, err := c.Cookie(sessionCookie); err == nil {
		if id, parseErr := uuid.Parse(raw); parseErr == nil {
			if sess, ok := app.sessions.Get(id); ok {
				return sess
			}
		}
	}

	sess := app.sessions.Create()
	c.SetCookie(sessionCookie, sess.ID.String(), 0, "/", "", false, true)
	app.logger.Debug("created session", "session_id", sess.SessionID())
	return sess
}
