package auth

import "time"

// Craft enumerates the fiber crafts a user can prefer.
type Craft string

const (
	CraftKnitting   Craft = "KNITTING"
	CraftCrocheting Craft = "CROCHETING"
	CraftBoth       Craft = "BOTH"
)

// SkillLevel enumerates self-reported user skill.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "BEGINNER"
	SkillIntermediate SkillLevel = "INTERMEDIATE"
	SkillAdvanced     SkillLevel = "ADVANCED"
)

// Visibility enumerates profile visibility settings.
type Visibility string

const (
	VisibilityPublic      Visibility = "PUBLIC"
	VisibilityPrivate     Visibility = "PRIVATE"
	VisibilityFriendsOnly Visibility = "FRIENDS_ONLY"
)

// User represents a registered account. PasswordHash never leaves this package.
type User struct {
	ID                string
	Email             string
	Name              string
	PasswordHash      string
	AvatarURL         *string
	Bio               *string
	Location          *string
	RavelryUsername   *string
	PreferredCrafts   Craft
	SkillLevel        SkillLevel
	ProfileVisibility Visibility
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Profile is the serializable view of a user with the credential stripped.
type Profile struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	AvatarURL         *string    `json:"avatarUrl"`
	Bio               *string    `json:"bio"`
	Location          *string    `json:"location"`
	RavelryUsername   *string    `json:"ravelryUsername"`
	PreferredCrafts   Craft      `json:"preferredCrafts"`
	SkillLevel        SkillLevel `json:"skillLevel"`
	ProfileVisibility Visibility `json:"profileVisibility"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// Profile returns the user's public view.
func (u *User) Profile() Profile {
	return Profile{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		AvatarURL:         u.AvatarURL,
		Bio:               u.Bio,
		Location:          u.Location,
		RavelryUsername:   u.RavelryUsername,
		PreferredCrafts:   u.PreferredCrafts,
		SkillLevel:        u.SkillLevel,
		ProfileVisibility: u.ProfileVisibility,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
