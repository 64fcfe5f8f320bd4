package auth

import "context"

type contextKey string

const teacherKey contextKey = "teacher-username"

// WithTeacher stores the authenticated teacher's username on the context.
func WithTeacher(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, teacherKey, username)
}

// FromContext retrieves the username stored by WithTeacher.
func FromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(teacherKey).(string)
	return username, ok
}
