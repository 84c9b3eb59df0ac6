package portal

const DatesLayout = "2006-01-02 15:04:05"

// ---- HTTP headers

const RequestIDHeader = "X-Request-ID"

// ---- Request context

type contextKey string

const RequestIdKey contextKey = "request.id"
