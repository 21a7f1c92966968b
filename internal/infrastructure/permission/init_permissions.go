package permission

import (
	"fmt"

	"github.com/ecoride/helpdesk/internal/shared/logger"
)

// InitPortalPermissions seeds the default role policies for the support
// portal. AddPolicy is idempotent when the policy already exists.
func InitPortalPermissions(e *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admin permissions - manage the knowledge base and all queries
		{"admin", "knowledge", "create"},
		{"admin", "knowledge", "read"},
		{"admin", "knowledge", "update"},
		{"admin", "knowledge", "delete"},
		{"admin", "query", "read"},
		{"admin", "query", "respond"},
		{"admin", "query", "close"},

		// Customer permissions - own conversations and queries, public help center
		{"customer", "knowledge", "read"},
		{"customer", "conversation", "create"},
		{"customer", "conversation", "read"},
		{"customer", "query", "create"},
		{"customer", "query", "read"},
	}

	for _, policy := range policies {
		if err := e.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Info("portal permissions initialized successfully")
	return nil
}
