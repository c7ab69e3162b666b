package span

import "testing"

var sink int

func BenchmarkSubViewsZeroAllocs(b *testing.B) {
	buf := make([]int, 1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := Of(buf).Subspan(3).SubspanN(10, 500).Last(100).First(50)
		sink += v.Len() + *v.Back()
	}
}

func BenchmarkIndexLoop(b *testing.B) {
	buf := make([]int, 1024)
	v := Of(buf)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := 0
		for j := 0; j < v.Len(); j++ {
			s += *v.At(j)
		}
		sink += s
	}
}

func BenchmarkValues(b *testing.B) {
	v := Of(make([]int, 1024))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := 0
		for x := range v.Values() {
			s += x
		}
		sink += s
	}
}

func BenchmarkSliceLoop(b *testing.B) {
	buf := make([]int, 1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := 0
		for _, x := range buf {
			s += x
		}
		sink += s
	}
}

func BenchmarkAsBytes(b *testing.B) {
	v := Of(make([]uint64, 256))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		raw, _ := AsBytes(v)
		sink += len(raw)
	}
}
