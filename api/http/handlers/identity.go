package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobmatch/backend/pkg/auth"
	"github.com/jobmatch/backend/pkg/security/jwt"
)

// callerIdentity reads the Identity the auth middleware stored in locals.
func callerIdentity(c *fiber.Ctx) (auth.Identity, bool) {
	ident, ok := c.Locals(jwt.LocalsIdentity).(auth.Identity)
	return ident, ok
}
