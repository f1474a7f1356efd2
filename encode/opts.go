package encode

type EncodeOption func(*EncState)

// EncodeIndent switches to multi-line output with n spaces per level.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
