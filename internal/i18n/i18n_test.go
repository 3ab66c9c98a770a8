package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_Translate(t *testing.T) {
	tr := New(Arabic)

	assert.Equal(t, "Your cart is empty", tr.Translate(English, "checkout.cart_empty"))
	assert.Equal(t, "سلة التسوق فارغة", tr.Translate(Arabic, "checkout.cart_empty"))
	assert.Equal(t, "unknown.key", tr.Translate(Arabic, "unknown.key"))
}

func TestTranslator_Direction(t *testing.T) {
	tr := New(Arabic)

	assert.Equal(t, RTL, tr.Direction(Arabic))
	assert.Equal(t, LTR, tr.Direction(English))
}

func TestTranslator_Negotiate(t *testing.T) {
	tr := New(Arabic)

	testCases := []struct {
		name     string
		explicit string
		accept   string
		want     Language
	}{
		{name: "empty falls back", want: Arabic},
		{name: "explicit english", explicit: "en", want: English},
		{name: "explicit beats header", explicit: "ar", accept: "en-US", want: Arabic},
		{name: "header regional english", accept: "en-GB,en;q=0.9", want: English},
		{name: "header arabic", accept: "ar-SA", want: Arabic},
		{name: "unsupported language", accept: "ja-JP", want: Arabic},
		{name: "garbage header", accept: ";;;", want: Arabic},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tr.Negotiate(tc.explicit, tc.accept))
		})
	}
}
