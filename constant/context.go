package constant

type contextKey string

const (
	ActorKey     contextKey = "actor"
	RequestIDKey contextKey = "request_id"
)

// ActorRole identifies which side of an order the caller acts for.
type ActorRole string

const (
	RoleInstitute    ActorRole = "institute"
	RoleManufacturer ActorRole = "manufacturer"
)
