package utils

import (
	"context"
)

type contextKey string

const (
	ActorKey     contextKey = "actor"
	ActorNameKey contextKey = "actor_name"
	SourceKey    contextKey = "source"
	RequestIDKey contextKey = "request_id"
)

// SystemActor is stamped on audit fields when no employee is authenticated.
const SystemActor = "System"

// SetActorContext stores the authenticated employee number and display name.
func SetActorContext(ctx context.Context, empNo, name string) context.Context {
	ctx = context.WithValue(ctx, ActorKey, empNo)
	ctx = context.WithValue(ctx, ActorNameKey, name)
	return ctx
}

// GetActorFromContext returns the authenticated employee number.
func GetActorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(ActorKey).(string)
	return actor, ok && actor != ""
}

func GetActorNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(ActorNameKey).(string)
	return name, ok && name != ""
}

// SetSourceContext stores where the request came from (client address).
func SetSourceContext(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, SourceKey, source)
}

func GetSourceFromContext(ctx context.Context) (string, bool) {
	source, ok := ctx.Value(SourceKey).(string)
	return source, ok && source != ""
}

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok && id != ""
}

// AuditActor returns the actor and source for audit stamping, falling back to
// SystemActor and defaultSource.
func AuditActor(ctx context.Context, defaultSource string) (actor, source string) {
	actor, ok := GetActorFromContext(ctx)
	if !ok {
		actor = SystemActor
	}
	source, ok = GetSourceFromContext(ctx)
	if !ok {
		source = defaultSource
	}
	return actor, source
}
