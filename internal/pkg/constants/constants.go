package constants

type ctxKey string

// CtxKeyRequestID carries the request id assigned by the api middleware,
// picked up by the logger.
const CtxKeyRequestID ctxKey = "request_id"

const (
	ViperKeyConnectionString = "connection_strings.default_connection"
	ViperKeyListenAddr       = "listen_addr"
)

const HeaderRequestID = "X-Request-Id"
