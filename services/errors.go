package services

import "errors"

// Errors surfaced to the API layer. Handlers map each group to a distinct
// HTTP status instead of collapsing everything into 500.
var (
	// Validation
	ErrInvalidID             = errors.New("malformed identifier")
	ErrEventNameRequired     = errors.New("event name is required")
	ErrTeamNameRequired      = errors.New("team name is required")
	ErrRequestMessageTooLong = errors.New("request message is too long")
	ErrEventReferenceInvalid = errors.New("referenced event does not exist")
	ErrTeamReferenceInvalid  = errors.New("referenced team does not exist")
	ErrUserReferenceInvalid  = errors.New("referenced user does not exist")

	// Not found
	ErrUserNotFound  = errors.New("user not found")
	ErrEventNotFound = errors.New("event not found")
	ErrTeamNotFound  = errors.New("team not found")

	// Conflicts (composite-key uniqueness and unique names)
	ErrUserNameConflict = errors.New("user name is already in use")
	ErrAlreadySolo      = errors.New("user is already registered solo for this event")
	ErrAlreadyJoined    = errors.New("user is already a member of this team")
	ErrAlreadyRequested = errors.New("user has already requested to join this team")

	// Authentication
	ErrAuthenticationFailed = errors.New("authentication failed")
)
