package logger

const RequestIdKey = "X-Request-Id"
