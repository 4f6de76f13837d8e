package notifier

// Client delivers an image with a caption to a named destination
// channel. Channel names are resolved to platform identifiers first;
// references that already carry a chat ID skip the platform lookup.
type Client interface {
	ResolveChannel(channel string) (int64, error)
	SendPhoto(chatID int64, photo []byte, filename, title, caption string) error
}
