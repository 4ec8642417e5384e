package common

// RequestIDHeaderName is the HTTP header used to carry a client-generated
// correlation id on outbound requests.
const RequestIDHeaderName = "X-Request-Id"
