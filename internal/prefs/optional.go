package prefs

// Remover is implemented by stores that can drop a key entirely.
type Remover interface {
	DeleteSetting(key string) error
}

// Locator is implemented by stores backed by a file on disk.
type Locator interface {
	Path() string
}
