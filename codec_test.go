package rational

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRationalMsgpack(t *testing.T) {
	assert := assert.New(t)

	r := ration(164, 105)
	b, err := r.MarshalMsgpack()
	assert.Nil(err)
	assert.Equal("00000000000000a40000000000000069", hex.EncodeToString(b))

	var v Rational
	err = v.UnmarshalMsgpack(b)
	assert.Nil(err)
	assert.Equal("164/105", v.String())
	assert.True(r.Equal(v))

	err = v.UnmarshalMsgpack(b[:7])
	assert.NotNil(err)
	assert.Equal("164/105", v.String())

	err = v.UnmarshalMsgpack(make([]byte, wireSize))
	assert.NotNil(err)
	assert.Equal("164/105", v.String())

	r = ration(-3, 2)
	b, err = r.MarshalMsgpack()
	assert.Nil(err)
	assert.Equal("fffffffffffffffd0000000000000002", hex.EncodeToString(b))
	err = v.UnmarshalMsgpack(b)
	assert.Nil(err)
	assert.Equal("-3/2", v.String())

	payload := MsgpackMarshalPanic(ration(198, 209))
	var w Rational
	err = MsgpackUnmarshal(payload, &w)
	assert.Nil(err)
	assert.Equal("198/209", w.String())
	assert.True(w.Equal(ration(18, 19)))

	err = MsgpackUnmarshal([]byte{0xc1}, &w)
	assert.NotNil(err)
}
