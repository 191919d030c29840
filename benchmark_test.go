package gradient

import "testing"

func BenchmarkAt(b *testing.B) {
	g, err := New(0x000f, 0xfff0, Spectral(), nil)
	if err != nil {
		b.Fatalf("new: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.At(uint16(i)); err != nil {
			b.Fatalf("at: %v", err)
		}
	}
}

func BenchmarkSamples(b *testing.B) {
	g, err := New(0, 0xffff, Heat(), nil)
	if err != nil {
		b.Fatalf("new: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Samples(256); err != nil {
			b.Fatalf("samples: %v", err)
		}
	}
}
