package scim

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"helpdesk/internal/database"
)

func TestSplitName(t *testing.T) {
	testCases := []struct {
		input  string
		given  string
		family string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Jane", "Jane", ""},
		{"Jane van der Berg", "Jane", "van der Berg"},
		{"  Jane   Doe  ", "Jane", "Doe"},
		{"", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			given, family := SplitName(tc.input)
			if given != tc.given || family != tc.family {
				t.Errorf("SplitName(%q) = (%q, %q); want (%q, %q)", tc.input, given, family, tc.given, tc.family)
			}
		})
	}
}

func TestFromRow(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	row := &database.User{
		ID:        uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Email:     "jdoe@example.com",
		Name:      "Jane Doe",
		Active:    true,
		CreatedAt: created,
		UpdatedAt: updated,
	}

	resource := FromRow(row, "/api/scim/v2")

	if len(resource.Schemas) != 1 || resource.Schemas[0] != SchemaUser {
		t.Errorf("schemas = %v; want [%s]", resource.Schemas, SchemaUser)
	}
	if resource.ID != row.ID.String() {
		t.Errorf("id = %q; want %q", resource.ID, row.ID.String())
	}
	if resource.UserName != "jdoe@example.com" {
		t.Errorf("userName = %q; want %q", resource.UserName, "jdoe@example.com")
	}
	if resource.Name.GivenName != "Jane" || resource.Name.FamilyName != "Doe" || resource.Name.Formatted != "Jane Doe" {
		t.Errorf("name = %+v; want Jane/Doe/Jane Doe", resource.Name)
	}
	if len(resource.Emails) != 1 || resource.Emails[0].Value != "jdoe@example.com" || !resource.Emails[0].Primary {
		t.Errorf("emails = %+v; want single primary jdoe@example.com", resource.Emails)
	}
	if !resource.Active {
		t.Error("active = false; want true")
	}
	if resource.Meta.ResourceType != "User" {
		t.Errorf("meta.resourceType = %q; want User", resource.Meta.ResourceType)
	}
	if resource.Meta.Location != "/api/scim/v2/Users/"+row.ID.String() {
		t.Errorf("meta.location = %q", resource.Meta.Location)
	}
	if !resource.Meta.Created.Equal(created) || !resource.Meta.LastModified.Equal(updated) {
		t.Errorf("meta timestamps = %v/%v; want %v/%v", resource.Meta.Created, resource.Meta.LastModified, created, updated)
	}
}

func TestUserRequestPrimaryEmail(t *testing.T) {
	testCases := []struct {
		name     string
		request  UserRequest
		expected string
	}{
		{
			"primary flag wins",
			UserRequest{
				UserName: "login@example.com",
				Emails:   []Email{{Value: "first@example.com"}, {Value: "primary@example.com", Primary: true}},
			},
			"primary@example.com",
		},
		{
			"first entry without primary flag",
			UserRequest{
				UserName: "login@example.com",
				Emails:   []Email{{Value: "first@example.com"}, {Value: "second@example.com"}},
			},
			"first@example.com",
		},
		{
			"userName fallback",
			UserRequest{UserName: "login@example.com"},
			"login@example.com",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := tc.request.PrimaryEmail(); actual != tc.expected {
				t.Errorf("PrimaryEmail() = %q; want %q", actual, tc.expected)
			}
		})
	}
}

func TestUserRequestDisplayName(t *testing.T) {
	testCases := []struct {
		name     string
		request  UserRequest
		expected string
	}{
		{
			"given and family joined",
			UserRequest{UserName: "jdoe@example.com", Name: &Name{GivenName: "Jane", FamilyName: "Doe"}},
			"Jane Doe",
		},
		{
			"given only",
			UserRequest{UserName: "jdoe@example.com", Name: &Name{GivenName: "Jane"}},
			"Jane",
		},
		{
			"family only",
			UserRequest{UserName: "jdoe@example.com", Name: &Name{FamilyName: "Doe"}},
			"Doe",
		},
		{
			"absent name falls back to userName",
			UserRequest{UserName: "jdoe@example.com"},
			"jdoe@example.com",
		},
		{
			"empty name falls back to userName",
			UserRequest{UserName: "jdoe@example.com", Name: &Name{}},
			"jdoe@example.com",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := tc.request.DisplayName(); actual != tc.expected {
				t.Errorf("DisplayName() = %q; want %q", actual, tc.expected)
			}
		})
	}
}

func TestUserRequestIsActive(t *testing.T) {
	active := true
	inactive := false

	if !(&UserRequest{}).IsActive() {
		t.Error("IsActive() with attribute omitted = false; want true")
	}
	if !(&UserRequest{Active: &active}).IsActive() {
		t.Error("IsActive() with active=true = false; want true")
	}
	if (&UserRequest{Active: &inactive}).IsActive() {
		t.Error("IsActive() with active=false = true; want false")
	}
}
