package booking

import (
	"fmt"

	"github.com/google/uuid"
)

// Roles a user can register with.
const (
	RoleGuest = "guest"
	RoleOwner = "owner"
)

// Identity is the authenticated caller. The zero value is an anonymous caller.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// Anonymous reports whether no user is attached to the identity.
func (i Identity) Anonymous() bool {
	return i.UserID == uuid.Nil
}

// Action is an operation the guard decides on.
type Action string

const (
	ActionBrowse               Action = "browse"
	ActionViewProfile          Action = "profile:view"
	ActionUpdateProfile        Action = "profile:update"
	ActionListOwnerProperties  Action = "owner:list-properties"
	ActionCreateProperty       Action = "property:create"
	ActionUpdateProperty       Action = "property:update"
	ActionDeleteProperty       Action = "property:delete"
	ActionManageImages         Action = "property:images"
	ActionListPropertyBookings Action = "property:list-bookings"
	ActionCreateBooking        Action = "booking:create"
	ActionViewBooking          Action = "booking:view"
	ActionCancelBooking        Action = "booking:cancel"
	ActionListGuestBookings    Action = "guest:list-bookings"
	ActionListOwnerBookings    Action = "owner:list-bookings"
	ActionManageFavorites      Action = "favorites"
)

// Resource carries the ownership facts of the resource being accessed.
// OwnerID is the owning user (profile, owner, property); GuestEmail is the
// email stored on a booking.
type Resource struct {
	OwnerID    uuid.UUID
	GuestEmail string
}

type rule func(id Identity, res Resource) bool

func anyone(Identity, Resource) bool { return true }

func authenticated(id Identity, _ Resource) bool { return !id.Anonymous() }

func self(id Identity, res Resource) bool {
	return !id.Anonymous() && id.UserID == res.OwnerID
}

func guest(id Identity, res Resource) bool {
	return !id.Anonymous() && id.Email != "" && id.Email == res.GuestEmail
}

func owner(id Identity, _ Resource) bool {
	return !id.Anonymous() && id.Role == RoleOwner
}

func owningOwner(id Identity, res Resource) bool {
	return owner(id, res) && id.UserID == res.OwnerID
}

// Property writes used to be open to any caller. They now require the owning
// user; creation requires the owner role.
var rules = map[Action]rule{
	ActionBrowse:               anyone,
	ActionViewProfile:          self,
	ActionUpdateProfile:        self,
	ActionListOwnerProperties:  self,
	ActionCreateProperty:       owner,
	ActionUpdateProperty:       owningOwner,
	ActionDeleteProperty:       owningOwner,
	ActionManageImages:         owningOwner,
	ActionListPropertyBookings: owningOwner,
	ActionCreateBooking:        authenticated,
	ActionViewBooking:          guest,
	ActionCancelBooking:        guest,
	ActionListGuestBookings:    authenticated,
	ActionListOwnerBookings:    owner,
	ActionManageFavorites:      authenticated,
}

// Authorize returns nil when id may perform action on res and an error
// wrapping ErrForbidden otherwise. Unknown actions are denied.
func Authorize(id Identity, action Action, res Resource) error {
	allow, ok := rules[action]
	if !ok || !allow(id, res) {
		return fmt.Errorf("%w: %s", ErrForbidden, action)
	}
	return nil
}
