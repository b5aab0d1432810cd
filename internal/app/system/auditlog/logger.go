// internal/app/system/auditlog/logger.go
package auditlog

import (
	"net/http"

	"go.uber.org/zap"
)

// Logger records security-relevant events (sign-in, sign-out, account
// deletion, group membership changes) as structured logs. The backend
// keeps the authoritative record; this trail is for operating the web
// client itself.
type Logger struct {
	zapLog *zap.Logger
}

// New creates an audit Logger.
func New(zapLog *zap.Logger) *Logger {
	return &Logger{zapLog: zapLog}
}

// clientIP extracts the client IP, preferring proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

func (l *Logger) event(r *http.Request, eventType string, success bool, fields ...zap.Field) {
	all := append([]zap.Field{
		zap.Bool("audit", true),
		zap.String("event_type", eventType),
		zap.Bool("success", success),
		zap.String("ip", clientIP(r)),
	}, fields...)

	if success {
		l.zapLog.Info("audit event", all...)
	} else {
		l.zapLog.Warn("audit event", all...)
	}
}

// LoginSuccess records a successful sign-in.
func (l *Logger) LoginSuccess(r *http.Request, email string) {
	l.event(r, "login", true, zap.String("email", email))
}

// LoginFailed records a rejected sign-in attempt.
func (l *Logger) LoginFailed(r *http.Request, email, reason string) {
	l.event(r, "login", false, zap.String("email", email), zap.String("failure_reason", reason))
}

// Logout records a sign-out.
func (l *Logger) Logout(r *http.Request, email string) {
	l.event(r, "logout", true, zap.String("email", email))
}

// AccountDeleted records a confirmed account deletion.
func (l *Logger) AccountDeleted(r *http.Request, email string) {
	l.event(r, "account_deleted", true, zap.String("email", email))
}

// MembershipChanged records add/remove/role-assign actions on a group.
func (l *Logger) MembershipChanged(r *http.Request, action, groupID, targetUserID string) {
	l.event(r, "membership_"+action, true,
		zap.String("group_id", groupID),
		zap.String("target_user_id", targetUserID))
}
