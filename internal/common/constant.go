package common

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "swadesh_session"

// DefaultMemoryCategory is applied when a memory is created without a category.
const DefaultMemoryCategory = "general"
