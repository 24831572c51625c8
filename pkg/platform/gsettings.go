package platform

import (
	"net/url"
	"strings"
)

// ParseGSettingsURI turns gsettings output such as 'file:///home/me/bg.png'
// into a local path. Non-file URIs and empty values yield "".
func ParseGSettingsURI(raw string) string {
	v := strings.TrimSpace(raw)
	v = strings.Trim(v, `'"`)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "file://") {
		if strings.HasPrefix(v, "/") {
			return v
		}
		return ""
	}
	u, err := url.Parse(v)
	if err != nil {
		return ""
	}
	return u.Path
}

// BackgroundKeys lists the org.gnome.desktop.background keys to try for a
// color-scheme value. Only a dark session prefers the dark wallpaper.
func BackgroundKeys(colorScheme string) []string {
	if strings.Trim(strings.TrimSpace(colorScheme), `'"`) == "prefer-dark" {
		return []string{"picture-uri-dark", "picture-uri"}
	}
	return []string{"picture-uri", "picture-uri-dark"}
}
