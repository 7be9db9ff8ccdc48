package view

import (
	"github.com/PuerkitoBio/goquery"
)

type Profile struct {
	Email     string
	FirstName string
	LastName  string
	// empty when the profile doesn't have a city field
	City string
}

const profileContainer = "#content_general"

// profileField looks `selector` up inside the profile container first and
// falls back to the whole document.
func profileField(doc *goquery.Document, container *goquery.Selection, selector string) (string, bool) {
	field := container.Find(selector).First()
	if field.Length() == 0 {
		field = doc.Find(selector).First()
	}
	if field.Length() == 0 {
		return "", false
	}
	return field.AttrOr("value", ""), true
}

const (
	emailSelector     = "#email"
	firstNameSelector = `input[name*="user_data[s_firstname]"]`
	lastNameSelector  = `input[name*="user_data[s_lastname]"]`
	citySelector      = `input[name*="user_data[b_city]"]`
)

// ParseProfile reads the profile-update form. The email, first name and last
// name are required, a missing city is left empty. The email is only looked
// up inside the profile container.
func ParseProfile(doc *goquery.Document) (Profile, error) {
	container := doc.Find(profileContainer).First()
	if container.Length() == 0 {
		return Profile{}, &MissingFieldError{Page: "profile", Field: profileContainer}
	}

	var missing string
	require := func(selector string) string {
		value, ok := profileField(doc, container, selector)
		if !ok && missing == "" {
			missing = selector
		}
		return value
	}

	// #email also appears outside the profile form
	email := container.Find(emailSelector).First()
	if email.Length() == 0 {
		return Profile{}, &MissingFieldError{Page: "profile", Field: emailSelector}
	}

	profile := Profile{
		Email:     email.AttrOr("value", ""),
		FirstName: require(firstNameSelector),
		LastName:  require(lastNameSelector),
	}
	if missing != "" {
		return Profile{}, &MissingFieldError{Page: "profile", Field: missing}
	}

	profile.City, _ = profileField(doc, container, citySelector)
	return profile, nil
}
