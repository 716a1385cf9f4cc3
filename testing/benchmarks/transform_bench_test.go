package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/xform"
	xformtest "github.com/zoobzio/xform/testing"
)

func BenchmarkTransformer_Overwrite(b *testing.B) {
	tr := xform.NewTransformer()
	req := xformtest.Request("baz.qux", `"test"`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Overwrite(context.Background(), req)
	}
}

func BenchmarkTransformer_Obfuscate(b *testing.B) {
	for _, algo := range xform.HashAlgos() {
		b.Run(string(algo), func(b *testing.B) {
			tr := xform.NewTransformer().SetDigest(algo)
			req := xformtest.Request("recipient", "")

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = tr.Obfuscate(context.Background(), req)
			}
		})
	}
}

func BenchmarkTransformer_Mask(b *testing.B) {
	tr := xform.NewTransformer()
	req := xformtest.Request("recipient", "")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Mask(context.Background(), req)
	}
}

func BenchmarkMaskText(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = xform.MaskText("tledwichb9@wsj.com", xform.StringMaskSymbol)
	}
}
