package service

import (
	"errors"
	"fmt"
)

// Validation and lookup errors. Every failure in this package is a returned
// outcome; nothing panics past an operation boundary.
var (
	ErrEmptyName        = errors.New("name must not be empty")
	ErrEmptyDescription = errors.New("description must not be empty")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrEmptySplit       = errors.New("at least one member must share the expense")
	ErrDuplicateSplit   = errors.New("split participants must not repeat")
	ErrCategoryRequired = errors.New("category must not be empty")

	ErrGroupNotFound       = errors.New("group not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrEMINotFound         = errors.New("emi not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrPayerNotMember      = errors.New("payer must be a current group member")
	ErrSplitNotMember      = errors.New("split participants must be current group members")

	// ErrInviteNotFound means the code is not recognized at all.
	// ErrInviteExpired means the code follows the invite-code shape but no
	// group carries it anymore. Both surface identically to the user, but
	// the distinction is preserved for testability.
	ErrInviteNotFound = errors.New("invite code not recognized")
	ErrInviteExpired  = errors.New("invite code not found, it may have expired")

	// ErrConfirmationRequired is returned when removing a settled member who
	// still appears in transaction history. Retrying with confirmed=true
	// proceeds; historical rows then render the member as "Deleted Member".
	ErrConfirmationRequired = errors.New("member has transaction history, removal requires confirmation")
)

// UnsettledBalanceError rejects removal of a member whose balance is outside
// the settlement epsilon. The outstanding amount is surfaced to the user.
type UnsettledBalanceError struct {
	MemberName string
	Balance    float64
}

func (e *UnsettledBalanceError) Error() string {
	return fmt.Sprintf("cannot remove %s: unsettled balance of %.2f, settle up first", e.MemberName, e.Balance)
}
