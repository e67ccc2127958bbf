package groups

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/Nour-Ali/NodeBB-nour/pkg/request"
	"github.com/Nour-Ali/NodeBB-nour/pkg/slugify"
)

// Settings supplies live configuration read by the group pipeline.
type Settings interface {
	MaximumGroupNameLength(ctx context.Context) (int, error)
}

// ValidateName checks a candidate group name. Rules apply in order and the
// first failure wins:
//
//  1. a falsy value is too short; any other non-string is invalid
//  2. longer than maxLen (in UTF-16 code units) is too long, unless it is a
//     privilege group
//  3. "guests" is invalid
//  4. a colon is invalid, unless it is a privilege group
//  5. a slash is invalid
//  6. a name whose slug is empty is invalid
func ValidateName(raw interface{}, isPrivilegeGroup func(string) bool, maxLen int) error {
	if !request.Truthy(raw) {
		return ErrNameTooShort
	}

	name, ok := raw.(string)
	if !ok {
		return ErrInvalidName
	}

	privileged := isPrivilegeGroup(name)

	if !privileged && nameLength(name) > maxLen {
		return ErrNameTooLong
	}

	if name == "guests" || (!privileged && strings.Contains(name, ":")) {
		return ErrInvalidName
	}

	if strings.Contains(name, "/") || slugify.Slugify(name) == "" {
		return ErrInvalidName
	}

	return nil
}

// nameLength counts UTF-16 code units, the unit the length limit has always
// been expressed in.
func nameLength(name string) int {
	n := 0
	for _, r := range name {
		n += utf16.RuneLen(r)
	}
	return n
}

// Validator applies ValidateName with the live length limit.
type Validator struct {
	names    NameClassifier
	settings Settings
}

// NewValidator builds a Validator.
func NewValidator(names NameClassifier, settings Settings) *Validator {
	return &Validator{names: names, settings: settings}
}

// Validate returns the validated name.
func (v *Validator) Validate(ctx context.Context, raw interface{}) (string, error) {
	maxLen, err := v.settings.MaximumGroupNameLength(ctx)
	if err != nil {
		return "", fmt.Errorf("load maximum group name length: %w", err)
	}

	if err := ValidateName(raw, v.names.IsPrivilegeGroup, maxLen); err != nil {
		return "", err
	}
	return raw.(string), nil
}
