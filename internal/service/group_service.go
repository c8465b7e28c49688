package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartfin/smartfin/internal/calculator"
	"github.com/smartfin/smartfin/internal/models"
	"github.com/smartfin/smartfin/internal/storage"
)

// InviteCodePrefix is the fixed prefix of every invite code this system
// generates. Codes without it are treated as foreign, not as expired.
const InviteCodePrefix = "SMART-"

// GroupService manages group lifecycle: creation, membership, and invite
// redemption. Every operation loads the owner's document, applies the change
// to a cloned snapshot, and saves the document back wholesale.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// newInviteCode returns a fresh shareable code. Collisions across a user's
// groups are accepted as negligible; no uniqueness check is performed.
func newInviteCode() string {
	return InviteCodePrefix + strings.ToUpper(uuid.NewString()[:4])
}

// looksLikeInviteCode reports whether a code follows this system's shape.
func looksLikeInviteCode(code string) bool {
	return strings.HasPrefix(code, InviteCodePrefix)
}

// Create makes a new group owned by the given user. The owner is seeded as
// the sole member with IsUser set, and the invite code is fixed for the
// group's lifetime.
func (s *GroupService) Create(ctx context.Context, userID, name, description string) (*models.Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	owner, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, err
	}

	group := models.Group{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		InviteCode:  newInviteCode(),
		CreatedAt:   time.Now(),
		Members: []models.Member{{
			ID:      owner.ID,
			Name:    owner.Name,
			Contact: owner.Email,
			IsUser:  true,
		}},
		Transactions: []models.GroupTransaction{},
	}

	doc.Groups = append([]models.Group{group}, doc.Groups...)
	if err := s.store.SaveDocument(ctx, userID, doc); err != nil {
		return nil, err
	}

	slog.Info("group created", "group_id", group.ID, "name", group.Name, "invite_code", group.InviteCode)
	return &group, nil
}

// Get retrieves a group by id.
func (s *GroupService) Get(ctx context.Context, userID, groupID string) (*models.Group, error) {
	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, err
	}
	group := doc.GroupByID(groupID)
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// List returns all of the user's groups, newest first.
func (s *GroupService) List(ctx context.Context, userID string) ([]models.Group, error) {
	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, err
	}
	return doc.Groups, nil
}

// Rename updates the group's display name and description. The invite code
// and membership are untouched.
func (s *GroupService) Rename(ctx context.Context, userID, groupID, name, description string) (*models.Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, err
	}
	group := doc.GroupByID(groupID)
	if group == nil {
		return nil, ErrGroupNotFound
	}

	updated := group.Clone()
	updated.Name = name
	updated.Description = description

	doc.ReplaceGroup(updated)
	if err := s.store.SaveDocument(ctx, userID, doc); err != nil {
		return nil, err
	}

	slog.Info("group renamed", "group_id", groupID, "name", name)
	return updated, nil
}

// AddMember appends a new member to the group. No duplicate detection by
// name or contact is performed.
func (s *GroupService) AddMember(ctx context.Context, userID, groupID, name, contact string) (*models.Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, err
	}
	group := doc.GroupByID(groupID)
	if group == nil {
		return nil, ErrGroupNotFound
	}

	updated := group.Clone()
	updated.Members = append(updated.Members, models.Member{
		ID:      uuid.NewString(),
		Name:    name,
		Contact: contact,
		IsUser:  false,
	})

	doc.ReplaceGroup(updated)
	if err := s.store.SaveDocument(ctx, userID, doc); err != nil {
		return nil, err
	}

	slog.Info("member added", "group_id", groupID, "member_name", name)
	return updated, nil
}

// RemoveMember removes a member from the group, guarded by the settlement
// policy:
//
//   - a member with an unsettled balance cannot be removed; the outstanding
//     amount is returned in an UnsettledBalanceError and nothing mutates
//   - a settled member who appears in transaction history needs confirmed
//     set, since their historical rows will render as "Deleted Member"
//   - a settled member with no history is removed unconditionally
//
// Transactions are never touched; member ids in them become soft references.
func (s *GroupService) RemoveMember(ctx context.Context, userID, groupID, memberID string, confirmed bool) (*models.Group, error) {
	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, err
	}
	group := doc.GroupByID(groupID)
	if group == nil {
		return nil, ErrGroupNotFound
	}
	member := group.MemberByID(memberID)
	if member == nil {
		return nil, ErrMemberNotFound
	}

	balance := calculator.ComputeBalances(group)[memberID]
	if !calculator.IsSettled(balance) {
		slog.Warn("member removal rejected",
			"group_id", groupID,
			"member_id", memberID,
			"balance", balance,
		)
		return nil, &UnsettledBalanceError{MemberName: member.Name, Balance: balance}
	}

	if group.HasHistory(memberID) && !confirmed {
		return nil, ErrConfirmationRequired
	}

	updated := group.Clone()
	members := updated.Members[:0]
	for _, m := range updated.Members {
		if m.ID != memberID {
			members = append(members, m)
		}
	}
	updated.Members = members

	doc.ReplaceGroup(updated)
	if err := s.store.SaveDocument(ctx, userID, doc); err != nil {
		return nil, err
	}

	slog.Info("member removed", "group_id", groupID, "member_id", memberID)
	return updated, nil
}

// RedeemInvite joins the user to the group carrying the given invite code.
// Redemption is idempotent: if a member with the user's contact identity
// already exists, the existing membership is returned without mutation.
// A code with this system's shape that matches no group yields
// ErrInviteExpired; any other code yields ErrInviteNotFound.
func (s *GroupService) RedeemInvite(ctx context.Context, userID, code string) (*models.Group, bool, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	var group *models.Group
	for i := range doc.Groups {
		if doc.Groups[i].InviteCode == code {
			group = &doc.Groups[i]
			break
		}
	}
	if group == nil {
		if looksLikeInviteCode(code) {
			return nil, false, ErrInviteExpired
		}
		return nil, false, ErrInviteNotFound
	}

	for i := range group.Members {
		if group.Members[i].Contact == user.Email {
			slog.Info("invite already redeemed", "group_id", group.ID, "user_id", userID)
			return group, true, nil
		}
	}

	updated := group.Clone()
	updated.Members = append(updated.Members, models.Member{
		ID:      user.ID,
		Name:    user.Name,
		Contact: user.Email,
		IsUser:  true,
	})

	doc.ReplaceGroup(updated)
	if err := s.store.SaveDocument(ctx, userID, doc); err != nil {
		return nil, false, err
	}

	slog.Info("invite redeemed", "group_id", group.ID, "user_id", userID)
	return updated, false, nil
}

// Balances returns each current member's net position plus suggested
// settling payments.
func (s *GroupService) Balances(ctx context.Context, userID, groupID string) (map[string]float64, []calculator.DebtEdge, error) {
	group, err := s.Get(ctx, userID, groupID)
	if err != nil {
		return nil, nil, err
	}
	return calculator.ComputeBalances(group), calculator.SimplifyDebts(group), nil
}

// IsUserNotFound reports whether err is the storage-level user lookup miss.
// Handlers use it to map auth failures distinctly from internal errors.
func IsUserNotFound(err error) bool {
	return errors.Is(err, storage.ErrUserNotFound)
}
