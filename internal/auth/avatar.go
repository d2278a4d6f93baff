package auth

import "net/url"

// AvatarURL derives a deterministic avatar reference from an email
// address, so the same account always gets the same picture.
func AvatarURL(email string) string {
	return "https://i.pravatar.cc/150?u=" + url.QueryEscape(email)
}
