package domain

// ContentKind identifies the shape of inbound screen content.
type ContentKind string

const (
	// ContentText is plain newline-separated text.
	ContentText ContentKind = "text"
	// ContentHTML is markup that gets tag-stripped down to plain text.
	ContentHTML ContentKind = "html"
	// ContentDataURI is a base64-encoded bitmap (data URI).
	ContentDataURI ContentKind = "data_uri"
	// ContentBigText requests oversized block-glyph rendering.
	ContentBigText ContentKind = "big_text"
)

// ContentPayload is a tagged variant describing what should be rasterized.
// Exactly one kind is active; Subtitle is only meaningful for ContentBigText.
type ContentPayload struct {
	Kind     ContentKind
	Raw      string
	Subtitle string
}

// TextPayload builds a plain text payload.
func TextPayload(text string) ContentPayload {
	return ContentPayload{Kind: ContentText, Raw: text}
}

// HTMLPayload builds an HTML payload.
func HTMLPayload(markup string) ContentPayload {
	return ContentPayload{Kind: ContentHTML, Raw: markup}
}

// DataURIPayload builds a data URI payload.
func DataURIPayload(uri string) ContentPayload {
	return ContentPayload{Kind: ContentDataURI, Raw: uri}
}

// BigTextPayload builds a big text payload with an optional subtitle.
func BigTextPayload(text, subtitle string) ContentPayload {
	return ContentPayload{Kind: ContentBigText, Raw: text, Subtitle: subtitle}
}
