package scim

import (
	"strings"
	"time"

	"helpdesk/internal/database"
)

type Name struct {
	GivenName  string `json:"givenName,omitempty"`
	FamilyName string `json:"familyName,omitempty"`
	Formatted  string `json:"formatted,omitempty"`
}

type Email struct {
	Value   string `json:"value"`
	Primary bool   `json:"primary,omitempty"`
}

type Meta struct {
	ResourceType string    `json:"resourceType"`
	Created      time.Time `json:"created"`
	LastModified time.Time `json:"lastModified"`
	Location     string    `json:"location"`
}

// User is the external resource representation.
type User struct {
	Schemas  []string `json:"schemas"`
	ID       string   `json:"id"`
	UserName string   `json:"userName"`
	Name     Name     `json:"name"`
	Emails   []Email  `json:"emails"`
	Active   bool     `json:"active"`
	Meta     Meta     `json:"meta"`
}

type ListResponse struct {
	Schemas      []string `json:"schemas"`
	TotalResults int64    `json:"totalResults"`
	StartIndex   int      `json:"startIndex"`
	ItemsPerPage int      `json:"itemsPerPage"`
	Resources    []User   `json:"Resources"`
}

// UserRequest is an inbound create or replace payload. Pointer fields record
// attribute presence so replace can apply only what the client sent.
type UserRequest struct {
	Schemas  []string `json:"schemas"`
	UserName string   `json:"userName"`
	Name     *Name    `json:"name"`
	Emails   []Email  `json:"emails"`
	Active   *bool    `json:"active"`
}

// FromRow translates an internal user row into the external resource.
// The stored display name is decomposed with SplitName; the decomposition is
// a best-effort one-way split, not a round trip.
func FromRow(u *database.User, basePath string) User {
	given, family := SplitName(u.Name)

	return User{
		Schemas:  []string{SchemaUser},
		ID:       u.ID.String(),
		UserName: u.Email,
		Name: Name{
			GivenName:  given,
			FamilyName: family,
			Formatted:  u.Name,
		},
		Emails: []Email{{Value: u.Email, Primary: true}},
		Active: u.Active,
		Meta: Meta{
			ResourceType: "User",
			Created:      u.CreatedAt,
			LastModified: u.UpdatedAt,
			Location:     basePath + "/Users/" + u.ID.String(),
		},
	}
}

// SplitName decomposes a display string into given and family parts: the
// first space-delimited token and the remaining tokens joined.
func SplitName(display string) (given, family string) {
	fields := strings.Fields(display)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// PrimaryEmail resolves the authoritative address of the payload: the entry
// flagged primary, else the first entry, else userName.
func (r *UserRequest) PrimaryEmail() string {
	for _, e := range r.Emails {
		if e.Primary {
			return e.Value
		}
	}
	if len(r.Emails) > 0 {
		return r.Emails[0].Value
	}
	return r.UserName
}

// DisplayName joins the given and family names with a single space. A payload
// without a name falls back to userName.
func (r *UserRequest) DisplayName() string {
	if r.Name != nil {
		name := strings.TrimSpace(r.Name.GivenName + " " + r.Name.FamilyName)
		if name != "" {
			return name
		}
	}
	return r.UserName
}

// IsActive defaults to true when the payload omits the attribute.
func (r *UserRequest) IsActive() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}
