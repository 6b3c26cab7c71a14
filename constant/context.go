package constant

type contextKey string

// AdminIDKey carries the authenticated admin id set by the auth middleware.
const AdminIDKey contextKey = "admin_id"
