package ports

type ResultsInvalidator interface {
	Invalidate(eventID string)
}
