package presentation

const (
	IDParam     = "id"
	TypeKey     = "Content-Type"
	FilenameKey = "X-Filename"
	KeyTraceID  = "trace_id"
)
