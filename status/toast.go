package status

// Toast carries a user-facing message and the HTTP status it should be
// delivered with. API handlers return it as an error and the handler
// wrapper renders it as a toast fragment.
type Toast struct {
	Message    string
	StatusCode int
}

func (t Toast) Error() string {
	return t.Message
}
