package permissions

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

const anyMethod = "*"

//go:embed permissions.json
var permissionsData []byte

// Permission grants roles access to every route under Path.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

func (p Permission) matches(path, method string) bool {
	if p.Method != anyMethod && !strings.EqualFold(p.Method, method) {
		return false
	}

	return path == p.Path || strings.HasPrefix(path, strings.TrimSuffix(p.Path, "/")+"/")
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the most specific rule covering path and method.
// The zero Permission means no rule applies.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	var found Permission

	for _, endpoint := range r.Endpoints {
		if !endpoint.matches(path, method) {
			continue
		}

		if len(endpoint.Path) > len(found.Path) || (len(endpoint.Path) == len(found.Path) && endpoint.Method != anyMethod) {
			found = endpoint
		}
	}

	return found
}

func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, err
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
