package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadConstructors(t *testing.T) {
	assert.Equal(t, ContentPayload{Kind: ContentText, Raw: "hi"}, TextPayload("hi"))
	assert.Equal(t, ContentPayload{Kind: ContentHTML, Raw: "<p>hi</p>"}, HTMLPayload("<p>hi</p>"))
	assert.Equal(t, ContentPayload{Kind: ContentDataURI, Raw: "data:,x"}, DataURIPayload("data:,x"))
	assert.Equal(t,
		ContentPayload{Kind: ContentBigText, Raw: "HI", Subtitle: "sub"},
		BigTextPayload("HI", "sub"))
}
