package rational

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v4"
)

func init() {
	msgpack.RegisterExt(0, (*Rational)(nil))
}

const wireSize = 16

// The wire form is the big endian numerator followed by the denominator.
func (r Rational) MarshalMsgpack() ([]byte, error) {
	b := make([]byte, wireSize)
	binary.BigEndian.PutUint64(b, uint64(r.n))
	binary.BigEndian.PutUint64(b[8:], uint64(r.d))
	return b, nil
}

func (r *Rational) UnmarshalMsgpack(data []byte) error {
	if len(data) != wireSize {
		return fmt.Errorf("invalid rational length %d", len(data))
	}
	n := int64(binary.BigEndian.Uint64(data))
	d := int64(binary.BigEndian.Uint64(data[8:]))
	if d == 0 {
		return fmt.Errorf("invalid denominator %d/%d", n, d)
	}
	r.n, r.d = n, d
	return nil
}

func MsgpackMarshalPanic(val interface{}) []byte {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseCompactEncoding(true).SortMapKeys(true)
	err := enc.Encode(val)
	if err != nil {
		panic(fmt.Errorf("MsgpackMarshalPanic: %#v %s", val, err.Error()))
	}
	return buf.Bytes()
}

func MsgpackUnmarshal(data []byte, val interface{}) error {
	err := msgpack.Unmarshal(data, val)
	if err == nil {
		return err
	}
	return fmt.Errorf("MsgpackUnmarshal: %s %s", hex.EncodeToString(data), err.Error())
}
