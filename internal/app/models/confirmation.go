package models

import "double-optin-service/internal/pkg/constvars"

type ConfirmationRequest struct {
	Email         string
	Token         string
	ExpirationRaw string
}

type Destination string

const (
	DestinationLanding Destination = "landing"
	DestinationExpired Destination = "expired"
	DestinationError   Destination = "error"
)

func (d Destination) FallbackPath() string {
	switch d {
	case DestinationLanding:
		return constvars.FallbackPathLanding
	case DestinationExpired:
		return constvars.FallbackPathExpired
	default:
		return constvars.FallbackPathError
	}
}

type Outcome string

const (
	OutcomeConfirmed     Outcome = "confirmed"
	OutcomeExpired       Outcome = "expired"
	OutcomeMisconfigured Outcome = "misconfigured"
)

// Verdict is what the decision rules produce before any page is looked up.
// Reason is nil for confirmed links and one of the exceptions outcome errors otherwise.
type Verdict struct {
	Outcome      Outcome
	Destination  Destination
	Notification *Notification
	Reason       error
}

// Decision is the terminal result of a confirmation: where to send the browser and, for a
// confirmed link only, the webhook notification to hand to the dispatcher.
type Decision struct {
	Outcome      Outcome
	RedirectURL  string
	Notification *Notification
}

func (d Decision) Forwards() bool {
	return d.Notification != nil
}
