package entity

// Platform identifies which chat platform a mini-app request came from.
type Platform string

const (
	PlatformTelegram Platform = "telegram"
	PlatformVK       Platform = "vk"
)

// ParsePlatform maps the optional wire value to a platform. Anything
// other than "vk" falls back to Telegram, the original default.
func ParsePlatform(s string) Platform {
	if s == string(PlatformVK) {
		return PlatformVK
	}
	return PlatformTelegram
}

// CallbackPath returns the upstream CRM callback segment for the platform.
func (p Platform) CallbackPath() string {
	if p == PlatformVK {
		return "vk_callback"
	}
	return "tg_callback"
}
