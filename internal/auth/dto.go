package auth

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Email             string     `json:"email" validate:"required,email"`
	Password          string     `json:"password" validate:"required,min=8"`
	Name              string     `json:"name" validate:"required,min=2"`
	Bio               *string    `json:"bio,omitempty"`
	Location          *string    `json:"location,omitempty"`
	RavelryUsername   *string    `json:"ravelryUsername,omitempty"`
	PreferredCrafts   Craft      `json:"preferredCrafts,omitempty" validate:"omitempty,oneof=KNITTING CROCHETING BOTH"`
	SkillLevel        SkillLevel `json:"skillLevel,omitempty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	ProfileVisibility Visibility `json:"profileVisibility,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE FRIENDS_ONLY"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the body for PUT /auth/me. Every field is optional;
// only provided fields are applied.
type UpdateProfileRequest struct {
	Name              *string     `json:"name,omitempty" validate:"omitempty,min=2"`
	Bio               *string     `json:"bio,omitempty"`
	Location          *string     `json:"location,omitempty"`
	RavelryUsername   *string     `json:"ravelryUsername,omitempty"`
	PreferredCrafts   *Craft      `json:"preferredCrafts,omitempty" validate:"omitempty,oneof=KNITTING CROCHETING BOTH"`
	SkillLevel        *SkillLevel `json:"skillLevel,omitempty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	ProfileVisibility *Visibility `json:"profileVisibility,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE FRIENDS_ONLY"`
}

// Empty reports whether the update carries no fields at all.
func (r UpdateProfileRequest) Empty() bool {
	return r.Name == nil && r.Bio == nil && r.Location == nil &&
		r.RavelryUsername == nil && r.PreferredCrafts == nil &&
		r.SkillLevel == nil && r.ProfileVisibility == nil
}

// Session pairs a profile with a freshly issued bearer token.
type Session struct {
	User  Profile `json:"user"`
	Token string  `json:"token"`
}
