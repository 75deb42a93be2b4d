package handler

type ContextKey string

var (
	PrincipalCtxKey ContextKey = "principal"
	ShiftCtx        ContextKey = "shift"
)
