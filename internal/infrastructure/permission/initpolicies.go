package permission

import (
	"fmt"

	"soapbox/internal/shared/logger"
)

// InitBoardPermissions seeds the default capability policies. AddPolicy is a
// no-op for policies that already exist, so this is safe to run on every
// startup.
func InitBoardPermissions(enforcer *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admins hold every capability.
		{"admin", "board", "manage"},
		{"admin", "board", "view_admin"},
		{"admin", "ticket", "edit"},
		{"admin", "ticket", "vote"},
		{"admin", "ticket", "comment"},

		// Moderators run the workflow but cannot reshape boards.
		{"moderator", "ticket", "edit"},
		{"moderator", "ticket", "vote"},
		{"moderator", "ticket", "comment"},

		// Authenticated users participate.
		{"user", "ticket", "vote"},
		{"user", "ticket", "comment"},

		// Anonymous visitors may comment; voting stays account-bound.
		{"anonymous", "ticket", "comment"},
	}

	for _, policy := range policies {
		if err := enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Info("board permissions initialized successfully")
	return nil
}
