package groups

import (
	"regexp"

	"github.com/Nour-Ali/NodeBB-nour/pkg/request"
)

// NameClassifier answers questions about reserved group names.
type NameClassifier interface {
	// IsPrivilegeGroup reports whether name is a per-category privilege group.
	IsPrivilegeGroup(name string) bool
	// IsSystemGroupName reports whether name is one of the built-in groups.
	IsSystemGroupName(name string) bool
	// IsEphemeralGroup reports whether name is a virtual group that exists
	// without a stored record.
	IsEphemeralGroup(name string) bool
}

var privilegeGroupRegex = regexp.MustCompile(`^cid:(?:-?\d+|admin):privileges:[\w\-:]+$`)

// StaticNames is a NameClassifier over fixed name lists.
type StaticNames struct {
	System    []string
	Ephemeral []string
}

// DefaultNames holds the platform's built-in and virtual groups.
var DefaultNames = StaticNames{
	System: []string{
		"registered-users",
		"verified-users",
		"unverified-users",
		"administrators",
		"Global Moderators",
	},
	Ephemeral: []string{"guests", "spiders"},
}

func (n StaticNames) IsPrivilegeGroup(name string) bool {
	return privilegeGroupRegex.MatchString(name)
}

func (n StaticNames) IsSystemGroupName(name string) bool {
	return contains(n.System, name)
}

func (n StaticNames) IsEphemeralGroup(name string) bool {
	return contains(n.Ephemeral, name)
}

func contains(list []string, name string) bool {
	for _, candidate := range list {
		if candidate == name {
			return true
		}
	}
	return false
}

// IsSystemGroup classifies a group from its raw "system" input and its name.
//
// A boolean true or a string that parses to 1 forces a system group. Any
// other flag, including numbers and strings such as "0", falls through to
// the name: built-in and privilege group names are always system groups.
func IsSystemGroup(rawFlag interface{}, name string, names NameClassifier) bool {
	switch flag := rawFlag.(type) {
	case bool:
		if flag {
			return true
		}
	case string:
		if request.ParseFlag(flag) {
			return true
		}
	}

	return names.IsSystemGroupName(name) || names.IsPrivilegeGroup(name)
}
