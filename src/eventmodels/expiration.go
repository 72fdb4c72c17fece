package eventmodels

// Expiration pairs an upstream expiration date string with its whole-day
// distance from the screening time.
type Expiration struct {
	Date             string
	DaysToExpiration int
}
