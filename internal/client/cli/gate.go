package cli

import "github.com/SatinderSinghSall/poetry-cli/internal/client/models"

// GateDecision is the outcome of evaluating an auth gate before a protected
// view. The two deny outcomes are distinct on purpose: an unauthenticated
// visitor is sent to login, an authenticated non-admin is sent home.
type GateDecision int

const (
	GateAllow GateDecision = iota
	GateDenyLogin
	GateDenyHome
)

// AuthenticatedGate admits any signed-in session.
func AuthenticatedGate(s *models.Session) GateDecision {
	if s == nil {
		return GateDenyLogin
	}
	return GateAllow
}

// AdminGate admits only signed-in administrators. It is a UI convenience,
// not a security boundary: the backend re-authorizes every request.
func AdminGate(s *models.Session) GateDecision {
	if s == nil {
		return GateDenyLogin
	}
	if !s.IsAdmin() {
		return GateDenyHome
	}
	return GateAllow
}
