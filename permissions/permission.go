package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed on one route pattern. Skip marks a public route.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the route. An empty role list allows every authenticated role.
func (p Permission) Allows(role string) bool {
	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the entry for the route, or the zero Permission when none is declared.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	permission, _ := r.Lookup(path, method)

	return permission
}

// Lookup finds the entry for a route pattern. "/v1/bookings" and "/v1/bookings/" are the same route.
func (r *PermissionData) Lookup(path, method string) (Permission, bool) {
	path = normalize(path)

	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return normalize(rp.Path) == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}, false
	}

	return r.Endpoints[idx], true
}

func normalize(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}

	return path
}

// Load decodes a permission table, rejecting duplicate route entries.
func Load(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("decoding permissions: %w", err)
	}

	seen := make(map[string]struct{}, len(permissions.Endpoints))

	for _, endpoint := range permissions.Endpoints {
		key := endpoint.Method + " " + normalize(endpoint.Path)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("duplicate permission for %s", key)
		}

		seen[key] = struct{}{}
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Load(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
