package session

// Phase is the stage of sign-in the session is in.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseCheckingStoredSession
	PhaseCheckingSystemCredentials
	PhaseAutoLoggingIn
	PhaseShowManualForm
	PhaseLoggedIn
)

var phaseNames = [...]string{
	PhaseInit:                      "init",
	PhaseCheckingStoredSession:     "checking_stored_session",
	PhaseCheckingSystemCredentials: "checking_system_credentials",
	PhaseAutoLoggingIn:             "auto_logging_in",
	PhaseShowManualForm:            "show_manual_form",
	PhaseLoggedIn:                  "logged_in",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}

	return phaseNames[p]
}

// State is a snapshot of the session as shown to the user.
type State struct {
	Phase        Phase
	Email        string
	Password     string
	ErrorMessage string
	IsLoading    bool
}
