package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGbkRoundTrip(t *testing.T) {
	gbk, err := Utf8StrToGbk("南极洲")
	require.NoError(t, err)
	assert.NotEqual(t, "南极洲", gbk)

	s, err := GbkStrToUtf8(gbk)
	require.NoError(t, err)
	assert.Equal(t, "南极洲", s)
}

func TestPurifyForUtf8(t *testing.T) {
	assert.Equal(t, "Arctic", PurifyForUtf8("Arc\x00tic\xff"))
	assert.Equal(t, "", PurifyForUtf8(""))
}
