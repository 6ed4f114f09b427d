package model

// Link is a social profile link shown in the footer.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// FooterResponse is the developer credit shown under the widget.
// AvatarURL is empty until the profile fetch succeeds.
type FooterResponse struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profile_url"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	Links      []Link `json:"links"`
}
