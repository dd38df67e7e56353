package utils

// Embed colors shared by all command responses.
const (
	SuccessColor = 0x57F287
	ErrorColor   = 0xED4245
	WarningColor = 0xFEE75C
	InfoColor    = 0x5865F2
)

func Ptr[T any](v T) *T {
	return &v
}
