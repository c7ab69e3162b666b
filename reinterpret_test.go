package span

import (
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func TestAsBytes(t *testing.T) {
	buf := []uint32{0x01020304, 0x05060708}
	raw, err := AsBytes(Of(buf))
	require.NoError(t, err)
	require.Len(t, raw, 8)
	require.Equal(t, buf[1], binary.NativeEndian.Uint32(raw[4:]))

	binary.NativeEndian.PutUint32(raw, 7)
	require.Equal(t, uint32(7), buf[0])
}

func TestAsBytesEmpty(t *testing.T) {
	raw, err := AsBytes(Span[int64]{})
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestAsBytesRejectsPointers(t *testing.T) {
	_, err := AsBytes(Of([]string{"a"}))
	require.ErrorIs(t, err, ErrNotPlain)

	type withPtr struct {
		N int
		P *int
	}
	_, err = AsBytes(Of([]withPtr{{}}))
	require.ErrorIs(t, err, ErrNotPlain)
	require.Panics(t, func() { MustBytes(Of([]*int{nil})) })
}

func TestReinterpret(t *testing.T) {
	buf := []uint64{1, 2, 3}
	v, err := Reinterpret[uint16](Of(buf), Options{CheckAlignment: true})
	require.NoError(t, err)
	require.Equal(t, 12, v.Len())
	require.Equal(t, uint16(2), v.Get(4)|v.Get(7))

	type pair struct{ A, B uint32 }
	p, err := Reinterpret[pair](Of(buf), Options{})
	require.NoError(t, err)
	require.Equal(t, 3, p.Len())
	p.Set(1, pair{})
	require.Equal(t, uint64(0), buf[1])
}

func TestReinterpretSizeMismatch(t *testing.T) {
	_, err := Reinterpret[uint32](Of([]byte{1, 2, 3, 4, 5, 6}), Options{})
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestReinterpretMisaligned(t *testing.T) {
	buf := make([]uint64, 2)
	raw := MustBytes(Of(buf))
	_, err := Reinterpret[uint32](Of(raw[1:5]), Options{CheckAlignment: true})
	require.ErrorIs(t, err, ErrMisaligned)

	v, err := Reinterpret[uint32](Of(raw[4:12]), Options{CheckAlignment: true})
	require.NoError(t, err)
	require.Equal(t, 2, v.Len())
}

func TestByteViewCompressRoundTrip(t *testing.T) {
	buf := make([]int32, 4096)
	for i := range buf {
		buf[i] = int32(i % 17)
	}
	raw := MustBytes(Of(buf))

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	packed := enc.EncodeAll(raw, nil)
	require.Less(t, len(packed), len(raw))

	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()
	out, err := dec.DecodeAll(packed, nil)
	require.NoError(t, err)

	back, err := Reinterpret[int32](Of(out), Options{})
	require.NoError(t, err)
	require.Equal(t, buf, back.Slice())
}
