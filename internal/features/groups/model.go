package groups

import (
	"html"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Store keys.
const (
	keyCreateTime        = "groups:createtime"
	keyVisibleCreateTime = "groups:visible:createtime"
	keyVisibleMembers    = "groups:visible:memberCount"
	keyVisibleName       = "groups:visible:name"
	keySlugToName        = "groupslug:groupname"
	keyUserSlugToUID     = "userslug:uid"
)

func groupKey(name string) string   { return "group:" + name }
func ownersKey(name string) string  { return "group:" + name + ":owners" }
func membersKey(name string) string { return "group:" + name + ":members" }

// Hash field names.
const (
	fieldName                = "name"
	fieldSlug                = "slug"
	fieldCreateTime          = "createtime"
	fieldUserTitle           = "userTitle"
	fieldUserTitleEnabled    = "userTitleEnabled"
	fieldDescription         = "description"
	fieldMemberCount         = "memberCount"
	fieldHidden              = "hidden"
	fieldSystem              = "system"
	fieldPrivate             = "private"
	fieldDisableJoinRequests = "disableJoinRequests"
	fieldDisableLeave        = "disableLeave"
)

// Group is the canonical group record. Flags are stored as 0/1.
type Group struct {
	Name                string `json:"name"`
	Slug                string `json:"slug"`
	CreateTime          int64  `json:"createtime"`
	UserTitle           string `json:"userTitle"`
	UserTitleEnabled    int    `json:"userTitleEnabled"`
	Description         string `json:"description"`
	MemberCount         int    `json:"memberCount"`
	Hidden              int    `json:"hidden"`
	System              int    `json:"system"`
	Private             int    `json:"private"`
	DisableJoinRequests int    `json:"disableJoinRequests"`
	DisableLeave        int    `json:"disableLeave"`

	// Extra holds fields added by filter:group.create listeners. They are
	// stored alongside the known fields; an Extra key never overrides one.
	Extra map[string]string `json:"extra,omitempty"`
}

// Clone returns a deep copy.
func (g *Group) Clone() *Group {
	out := *g
	if g.Extra != nil {
		out.Extra = make(map[string]string, len(g.Extra))
		for k, v := range g.Extra {
			out.Extra[k] = v
		}
	}
	return &out
}

func (g *Group) toHash() map[string]string {
	fields := make(map[string]string, 12+len(g.Extra))
	for k, v := range g.Extra {
		fields[k] = v
	}

	fields[fieldName] = g.Name
	fields[fieldSlug] = g.Slug
	fields[fieldCreateTime] = strconv.FormatInt(g.CreateTime, 10)
	fields[fieldUserTitle] = g.UserTitle
	fields[fieldUserTitleEnabled] = strconv.Itoa(g.UserTitleEnabled)
	fields[fieldDescription] = g.Description
	fields[fieldMemberCount] = strconv.Itoa(g.MemberCount)
	fields[fieldHidden] = strconv.Itoa(g.Hidden)
	fields[fieldSystem] = strconv.Itoa(g.System)
	fields[fieldPrivate] = strconv.Itoa(g.Private)
	fields[fieldDisableJoinRequests] = strconv.Itoa(g.DisableJoinRequests)
	fields[fieldDisableLeave] = strconv.Itoa(g.DisableLeave)
	return fields
}

func groupFromHash(fields map[string]string) *Group {
	g := &Group{
		Name:                fields[fieldName],
		Slug:                fields[fieldSlug],
		CreateTime:          atoi64(fields[fieldCreateTime]),
		UserTitle:           fields[fieldUserTitle],
		UserTitleEnabled:    atoi(fields[fieldUserTitleEnabled]),
		Description:         fields[fieldDescription],
		MemberCount:         atoi(fields[fieldMemberCount]),
		Hidden:              atoi(fields[fieldHidden]),
		System:              atoi(fields[fieldSystem]),
		Private:             atoi(fields[fieldPrivate]),
		DisableJoinRequests: atoi(fields[fieldDisableJoinRequests]),
		DisableLeave:        atoi(fields[fieldDisableLeave]),
	}

	for k, v := range fields {
		if knownField(k) {
			continue
		}
		if g.Extra == nil {
			g.Extra = make(map[string]string)
		}
		g.Extra[k] = v
	}
	return g
}

func knownField(name string) bool {
	switch name {
	case fieldName, fieldSlug, fieldCreateTime, fieldUserTitle, fieldUserTitleEnabled,
		fieldDescription, fieldMemberCount, fieldHidden, fieldSystem, fieldPrivate,
		fieldDisableJoinRequests, fieldDisableLeave:
		return true
	}
	return false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atoi64(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Scores written by other clients may carry a fraction.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		return int64(f)
	}
	return n
}

// View is the client representation of a group: the stored record plus
// display fields derived on every read.
type View struct {
	*Group
	NameEncoded      string `json:"nameEncoded"`
	DisplayName      string `json:"displayName"`
	UserTitleEscaped string `json:"userTitleEscaped"`
	CreateTimeISO    string `json:"createtimeISO"`
}

// NewView derives the display fields for g.
func NewView(g *Group) View {
	title := g.UserTitle
	if title == "" {
		title = g.Name
	}

	return View{
		Group:            g,
		NameEncoded:      url.PathEscape(g.Name),
		DisplayName:      html.EscapeString(g.Name),
		UserTitleEscaped: html.EscapeString(title),
		CreateTimeISO:    time.UnixMilli(g.CreateTime).UTC().Format("2006-01-02T15:04:05.000Z"),
	}
}

// alphaMember is the groups:visible:name member for name: the lower-cased
// name first so ordering is case-insensitive, then the original name.
func alphaMember(name string) string {
	return cases.Lower(language.Und).String(name) + ":" + name
}

// nameFromAlphaMember inverts alphaMember.
func nameFromAlphaMember(member string) string {
	if i := strings.Index(member, ":"); i >= 0 {
		return member[i+1:]
	}
	return member
}
