package service

// Conflict is a uniqueness violation surfaced to clients as a 409 with a
// machine-readable code the frontend can branch on.
type Conflict struct {
	Code   string
	Detail string
}

func (e *Conflict) Error() string { return e.Detail }
