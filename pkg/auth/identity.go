package auth

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	UserID    uuid.UUID
	Name      string
	Email     string
	AvatarURL string
	// ResumeIDs holds the resumes owned by the user. Populated only when the
	// identity is resolved against the store, not when built from claims.
	ResumeIDs []uuid.UUID
}

// ResumeLister is the slice of the resume port the resolver needs.
type ResumeLister interface {
	ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
}

// IdentityResolver turns a token subject into a full Identity via one user
// lookup. An unresolvable subject fails exactly like an invalid token, so
// the API never confirms whether an account exists.
type IdentityResolver struct {
	users   UserRepository
	resumes ResumeLister
}

func NewIdentityResolver(users UserRepository, resumes ResumeLister) *IdentityResolver {
	return &IdentityResolver{users: users, resumes: resumes}
}

func (r *IdentityResolver) Resolve(ctx context.Context, userID uuid.UUID) (Identity, error) {
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return Identity{}, err
	}
	ident := Identity{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}
	if r.resumes != nil {
		// Best-effort: identity stays usable even if the listing fails.
		if ids, err := r.resumes.ListIDsByOwner(ctx, user.ID); err == nil {
			ident.ResumeIDs = ids
		}
	}
	return ident, nil
}
