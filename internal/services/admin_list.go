package services

import "strings"

// AdminList holds the account IDs exempt from the daily trip quota.
type AdminList []string

// ParseAdminList splits a comma-separated id list, dropping blanks.
func ParseAdminList(raw string) AdminList {
	parts := strings.Split(raw, ",")
	ids := make(AdminList, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
